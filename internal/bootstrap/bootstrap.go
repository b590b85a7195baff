package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	appControllers "github.com/siwes/interntrack/internal/app/controllers"
	appMigrations "github.com/siwes/interntrack/internal/app/migrations"
	appRepos "github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/app/repositories/memstore"
	appRoutes "github.com/siwes/interntrack/internal/app/routes"
	appServices "github.com/siwes/interntrack/internal/app/services"
	"github.com/siwes/interntrack/internal/config"
	"github.com/siwes/interntrack/internal/db"
	appMiddleware "github.com/siwes/interntrack/internal/middleware"
	pkgAuth "github.com/siwes/interntrack/internal/pkg/auth"
	"github.com/siwes/interntrack/internal/pkg/email"
	"github.com/siwes/interntrack/internal/pkg/filestorage"
	"github.com/siwes/interntrack/internal/pkg/logger"
	"github.com/siwes/interntrack/internal/pkg/validation"
	"github.com/siwes/interntrack/internal/pkg/websocket"
	"github.com/siwes/interntrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Mailer         email.EmailService
	Hub            *websocket.Hub
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    *appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStores opens the configured store, runs migrations and seeds default data.
// The returned database is nil for the memory driver.
func SetupStores(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *db.PostgresDB, error) {
	var (
		repos    *appRepos.Repositories
		database *db.PostgresDB
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using the in-memory store, data is lost on restart")
		repos = memstore.NewRepositories()

	default:
		lgr.Info().Msg("Establishing database connection...")
		var err error
		database, err = db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		migrationsDir := cfg.Database.MigrationsPath
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			database.Close()
			lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
			return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
		}

		lgr.Info().Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(database.Pool, lgr)
		if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
			database.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		repos = appRepos.NewRepositories(database)
	}

	if cfg.Seed.Enabled {
		coordinator := seed.Coordinator{
			FullName: cfg.Seed.CoordinatorName,
			Email:    cfg.Seed.CoordinatorEmail,
			Password: cfg.Seed.CoordinatorPassword,
		}
		if err := seed.CreateDefaultData(ctx, repos.Users, coordinator, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return repos, database, nil
}

// BuildDependencies initializes services, controllers and the realtime hub over the given stores.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	if err := validation.RegisterRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps := &Dependencies{Repos: repos, Logger: lgr}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.PublicBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  config.Duration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: config.Duration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Mailer = email.NewEmailService(email.Config{
		Provider:       cfg.Email.Provider,
		SMTPHost:       cfg.Email.SMTPHost,
		SMTPPort:       cfg.Email.SMTPPort,
		SMTPUsername:   cfg.Email.SMTPUsername,
		SMTPPassword:   cfg.Email.SMTPPassword,
		SMTPUseTLS:     cfg.Email.SMTPUseTLS,
		SendGridAPIKey: cfg.Email.SendGridAPIKey,
		FromName:       cfg.Email.FromName,
		FromEmail:      cfg.Email.FromEmail,
	}, lgr.With().Str("component", "email").Logger())

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "websocket").Logger())

	deps.Services = appServices.NewServices(repos, appServices.Options{
		JWT:     deps.JWTService,
		Storage: deps.FileStorage,
		Mailer:  deps.Mailer,
		Pusher:  deps.Hub,
		Notifications: appServices.NotificationConfig{
			QueueSize: cfg.Notifications.QueueSize,
			Workers:   cfg.Notifications.Workers,
		},
		Verification: appServices.VerificationCodeConfig{
			TTL:        config.Duration(cfg.Verification.CodeTTL, 24*time.Hour),
			Length:     cfg.Verification.CodeLength,
			PurgeAfter: config.Duration(cfg.Verification.PurgeAfter, 7*24*time.Hour),
		},
		Logger: lgr,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	svc := deps.Services
	deps.Controllers = &appRoutes.Controllers{
		Auth:          appControllers.NewAuthController(svc.Auth, lgr),
		Codes:         appControllers.NewVerificationCodeController(svc.Codes, lgr),
		Assignments:   appControllers.NewAssignmentController(svc.Assignments, lgr),
		Logbooks:      appControllers.NewLogbookController(svc.Logbooks, lgr),
		Defenses:      appControllers.NewDefenseController(svc.Gradings, lgr),
		Notifications: appControllers.NewNotificationController(svc.Notifications),
		WebSocket:     websocket.NewHandler(deps.Hub, cfg.Server.AllowedOrigins, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.Static("/uploads", cfg.Server.StoragePath)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

// ScheduleMaintenance registers the periodic purge of expired codes and refresh tokens.
// The returned scheduler is not started.
func ScheduleMaintenance(cfg *config.Config, svc *appServices.Services, lgr zerolog.Logger) (*cron.Cron, error) {
	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := scheduler.AddFunc(cfg.Maintenance.PurgeSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		codes, err := svc.Codes.PurgeExpired(ctx)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to purge expired verification codes")
		}
		tokens, err := svc.Auth.CleanupTokens(ctx)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to clean up refresh tokens")
		}
		lgr.Info().Int64("codes", codes).Int64("tokens", tokens).Msg("Maintenance purge finished")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid maintenance schedule %q: %w", cfg.Maintenance.PurgeSchedule, err)
	}

	return scheduler, nil
}
