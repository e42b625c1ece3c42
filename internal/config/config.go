package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Default addresses used when the environment does not override them.
const (
	DefaultToEmail   = "Curafehealth@gmail.com"
	DefaultFromEmail = "no-reply@example.com"
	DefaultFromName  = "CuraFe Health Website"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port int

	// Database: a postgres:// URL or a SQLite file path
	DatabaseURL string

	// SMTP transport
	MailHost   string
	MailPort   int
	MailSecure bool
	MailUser   string
	MailPass   string

	// Addresses
	ToEmail   string
	FromEmail string
	FromName  string

	// SendGrid transport (serverless relay and optional primary transport)
	SendGridAPIKey string

	// Bound on a single mail dispatch attempt
	MailTimeout time.Duration

	// Security
	APIKey         string
	AllowedOrigins string
	AppEnv         string

	// Logging
	LogLevel string

	// Rate limiting
	RateLimitRequests float64
	RateLimitBurst    int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	// PORT (default: 3000)
	port := os.Getenv("PORT")
	if port == "" {
		cfg.Port = 3000
	} else {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("PORT must be a valid integer: %w", err)
		}
		cfg.Port = p
	}

	// DATABASE_URL takes precedence, DATABASE_FILE is the SQLite path
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_FILE")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "./data/submissions.db"
	}

	// Mail transport: all optional, absence must not block persistence
	cfg.MailHost = os.Getenv("MAIL_HOST")

	mailPort := os.Getenv("MAIL_PORT")
	if mailPort == "" {
		cfg.MailPort = 587
	} else {
		p, err := strconv.Atoi(mailPort)
		if err != nil {
			return nil, fmt.Errorf("MAIL_PORT must be a valid integer: %w", err)
		}
		cfg.MailPort = p
	}

	if secure := os.Getenv("MAIL_SECURE"); secure != "" {
		v, err := strconv.ParseBool(secure)
		if err != nil {
			return nil, fmt.Errorf("MAIL_SECURE must be a valid boolean: %w", err)
		}
		cfg.MailSecure = v
	}

	cfg.MailUser = os.Getenv("MAIL_USER")
	cfg.MailPass = os.Getenv("MAIL_PASS")

	cfg.ToEmail = os.Getenv("TO_EMAIL")
	if cfg.ToEmail == "" {
		cfg.ToEmail = DefaultToEmail
	}
	cfg.FromEmail = os.Getenv("FROM_EMAIL")
	if cfg.FromEmail == "" {
		cfg.FromEmail = DefaultFromEmail
	}
	cfg.FromName = os.Getenv("FROM_NAME")
	if cfg.FromName == "" {
		cfg.FromName = DefaultFromName
	}

	cfg.SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")

	// MAIL_TIMEOUT (default: 5s)
	if timeout := os.Getenv("MAIL_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("MAIL_TIMEOUT must be a valid duration: %w", err)
		}
		cfg.MailTimeout = d
	} else {
		cfg.MailTimeout = 5 * time.Second
	}

	// Security configuration
	cfg.APIKey = os.Getenv("API_KEY")
	cfg.AllowedOrigins = os.Getenv("ALLOWED_ORIGINS")
	cfg.AppEnv = os.Getenv("APP_ENV")
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	// LOG_LEVEL (default: info)
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Rate limiting configuration
	if rps := os.Getenv("RATE_LIMIT_REQUESTS"); rps != "" {
		if v, err := strconv.ParseFloat(rps, 64); err == nil {
			cfg.RateLimitRequests = v
		}
	} else {
		cfg.RateLimitRequests = 10.0
	}

	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		if v, err := strconv.Atoi(burst); err == nil {
			cfg.RateLimitBurst = v
		}
	} else {
		cfg.RateLimitBurst = 20
	}

	return cfg, nil
}

// LoadWithValidation loads and validates configuration, failing fast on errors
func LoadWithValidation() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("Port must be between 1 and 65535")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DatabaseURL cannot be empty")
	}
	if c.MailPort <= 0 || c.MailPort > 65535 {
		return fmt.Errorf("MailPort must be between 1 and 65535")
	}
	if c.MailTimeout <= 0 {
		return fmt.Errorf("MailTimeout must be positive")
	}
	if c.ToEmail == "" {
		return fmt.Errorf("ToEmail cannot be empty")
	}
	return nil
}

// MailConfigured reports whether an SMTP transport is configured.
func (c *Config) MailConfigured() bool {
	return c.MailHost != ""
}

// LogConfig logs configuration values (excluding secrets)
func (c *Config) LogConfig(logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.Int("port", c.Port),
		slog.String("app_env", c.AppEnv),
		slog.String("log_level", c.LogLevel),
		slog.String("mail_host", c.MailHost),
		slog.Int("mail_port", c.MailPort),
		slog.Bool("mail_secure", c.MailSecure),
		slog.Bool("mail_auth_set", c.MailUser != ""),
		slog.Bool("sendgrid_key_set", c.SendGridAPIKey != ""),
		slog.Duration("mail_timeout", c.MailTimeout),
		slog.Bool("api_key_set", c.APIKey != ""),
		slog.Bool("allowed_origins_set", c.AllowedOrigins != ""),
		slog.Float64("rate_limit_rps", c.RateLimitRequests),
		slog.Int("rate_limit_burst", c.RateLimitBurst),
	)
}
