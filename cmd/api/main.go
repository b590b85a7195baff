package main

import (
	"flag"
	"os"

	"github.com/siwes/interntrack/internal/pkg/logger"
	"github.com/siwes/interntrack/internal/server"
)

// @title InternTrack API
// @version 1.0
// @description SIWES internship tracking: registration codes, supervisor assignments, weekly logbooks and defense grading.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML configuration file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		// setup functions log the details
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
