package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/siwes/interntrack/internal/bootstrap"
	"github.com/siwes/interntrack/internal/config"
	"github.com/siwes/interntrack/internal/db"
)

// Server holds the state for the HTTP server and its background workers.
type Server struct {
	config    *config.Config
	router    *gin.Engine
	database  *db.PostgresDB
	deps      *bootstrap.Dependencies
	scheduler *cron.Cron
	stopHub   context.CancelFunc
	logger    zerolog.Logger
	http      *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	repos, database, err := bootstrap.SetupStores(context.Background(), cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, repos, lgr)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	scheduler, err := bootstrap.ScheduleMaintenance(cfg, deps.Services, lgr)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, err
	}

	setupStorageDirectory(cfg, lgr)

	return &Server{
		config:    cfg,
		router:    bootstrap.SetupRouter(cfg, deps, lgr),
		database:  database,
		deps:      deps,
		scheduler: scheduler,
		logger:    lgr,
	}, nil
}

func setupStorageDirectory(cfg *config.Config, lgr zerolog.Logger) {
	uploadPath := cfg.Server.StoragePath
	if _, err := os.Stat(uploadPath); os.IsNotExist(err) {
		if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
			lgr.Error().Err(err).Str("path", uploadPath).Msg("Failed to create uploads directory")
			return
		}
	}
	lgr.Info().Str("path", uploadPath).Msg("Static file serving configured for uploads directory")
}

// Run starts the workers and the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	hubCtx, stopHub := context.WithCancel(context.Background())
	s.stopHub = stopHub
	go s.deps.Hub.Run(hubCtx)

	s.deps.Services.Notifications.Start()
	s.scheduler.Start()

	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.Shutdown(context.Background())
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown stops accepting requests, drains the notification queue and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.Duration(s.config.Server.ShutdownTimeout, 10*time.Second))
	defer cancel()

	var shutdownErr error

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = errors.Join(shutdownErr, err)
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	// wait for a purge in progress
	<-s.scheduler.Stop().Done()

	if err := s.deps.Services.Notifications.Close(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Notification queue not drained")
		shutdownErr = errors.Join(shutdownErr, err)
	}

	if s.stopHub != nil {
		s.stopHub()
	}

	if s.database != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.database.Close()
		s.logger.Info().Msg("Database connection pool closed.")
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown completed with errors: %w", shutdownErr)
	}
	return nil
}
