package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Email providers
const (
	EmailProviderLog      = "log"
	EmailProviderSMTP     = "smtp"
	EmailProviderSendGrid = "sendgrid"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string   `yaml:"port" env:"SERVER_PORT"`
		Mode            string   `yaml:"mode" env:"SERVER_MODE"`
		StoragePath     string   `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		PublicBaseURL   string   `yaml:"public_base_url" env:"SERVER_PUBLIC_BASE_URL"`
		AllowedOrigins  []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
		ShutdownTimeout string   `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsPath  string `yaml:"migrations_path" env:"DB_MIGRATIONS_PATH"`
	} `yaml:"database"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Email struct {
		Provider       string `yaml:"provider" env:"EMAIL_PROVIDER"`
		SMTPHost       string `yaml:"smtp_host" env:"EMAIL_SMTP_HOST"`
		SMTPPort       int    `yaml:"smtp_port" env:"EMAIL_SMTP_PORT"`
		SMTPUsername   string `yaml:"smtp_username" env:"EMAIL_SMTP_USERNAME"`
		SMTPPassword   string `yaml:"smtp_password" env:"EMAIL_SMTP_PASSWORD"`
		SMTPUseTLS     bool   `yaml:"smtp_use_tls" env:"EMAIL_SMTP_USE_TLS"`
		SendGridAPIKey string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"`
		FromName       string `yaml:"from_name" env:"EMAIL_FROM_NAME"`
		FromEmail      string `yaml:"from_email" env:"EMAIL_FROM_EMAIL"`
	} `yaml:"email"`

	Notifications struct {
		QueueSize int `yaml:"queue_size" env:"NOTIFICATIONS_QUEUE_SIZE"`
		Workers   int `yaml:"workers" env:"NOTIFICATIONS_WORKERS"`
	} `yaml:"notifications"`

	Verification struct {
		CodeTTL    string `yaml:"code_ttl" env:"VERIFICATION_CODE_TTL"`
		CodeLength int    `yaml:"code_length" env:"VERIFICATION_CODE_LENGTH"`
		PurgeAfter string `yaml:"purge_after" env:"VERIFICATION_PURGE_AFTER"`
	} `yaml:"verification"`

	Seed struct {
		Enabled             bool   `yaml:"enabled" env:"SEED_ENABLED"`
		CoordinatorName     string `yaml:"coordinator_name" env:"SEED_COORDINATOR_NAME"`
		CoordinatorEmail    string `yaml:"coordinator_email" env:"SEED_COORDINATOR_EMAIL"`
		CoordinatorPassword string `yaml:"coordinator_password" env:"SEED_COORDINATOR_PASSWORD"`
	} `yaml:"seed"`

	Maintenance struct {
		PurgeSchedule string `yaml:"purge_schedule" env:"MAINTENANCE_PURGE_SCHEDULE"`
	} `yaml:"maintenance"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "./uploads"
	config.Server.PublicBaseURL = "http://localhost:8080/uploads"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "interntrack"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsPath = "migrations"

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.RefreshTokenExpiration = "720h"
	config.JWT.Issuer = "interntrack"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Email.Provider = EmailProviderLog
	config.Email.SMTPPort = 587
	config.Email.FromName = "InternTrack"
	config.Email.FromEmail = "no-reply@interntrack.local"

	config.Notifications.QueueSize = 256
	config.Notifications.Workers = 2

	config.Verification.CodeTTL = "24h"
	config.Verification.CodeLength = 8
	config.Verification.PurgeAfter = "168h"

	config.Seed.Enabled = true
	config.Seed.CoordinatorName = "SIWES Coordinator"
	config.Seed.CoordinatorEmail = "coordinator@interntrack.local"

	config.Maintenance.PurgeSchedule = "@every 1h"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database connection max lifetime: %w", err)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	durations := map[string]string{
		"JWT access token expiration":  config.JWT.AccessTokenExpiration,
		"JWT refresh token expiration": config.JWT.RefreshTokenExpiration,
		"verification code ttl":        config.Verification.CodeTTL,
		"verification purge after":     config.Verification.PurgeAfter,
		"server shutdown timeout":      config.Server.ShutdownTimeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	switch strings.ToLower(config.Email.Provider) {
	case EmailProviderLog:
	case EmailProviderSMTP:
		if config.Email.SMTPHost == "" {
			return fmt.Errorf("smtp host is required for the smtp email provider")
		}
	case EmailProviderSendGrid:
		if config.Email.SendGridAPIKey == "" {
			return fmt.Errorf("sendgrid api key is required for the sendgrid email provider")
		}
	default:
		return fmt.Errorf("unsupported email provider %q", config.Email.Provider)
	}

	if config.Notifications.QueueSize <= 0 || config.Notifications.Workers <= 0 {
		return fmt.Errorf("notification queue size and workers must be positive")
	}

	if config.Verification.CodeLength < 6 {
		return fmt.Errorf("verification code length must be at least 6")
	}

	if config.Seed.Enabled && config.Seed.CoordinatorEmail != "" && config.Seed.CoordinatorPassword == "" {
		return fmt.Errorf("seed coordinator password is required when seeding is enabled")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// Duration parses a duration that validateConfig has already checked.
func Duration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
