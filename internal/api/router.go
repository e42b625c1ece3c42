package api

import (
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/curafehealth/website-backend/internal/api/handlers"
	"github.com/curafehealth/website-backend/internal/api/middleware"
	"github.com/curafehealth/website-backend/internal/mailer"
	"github.com/curafehealth/website-backend/internal/repository"
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	DB     *gorm.DB
	Sender mailer.Sender
	Logger *slog.Logger

	ToEmail     string
	FromEmail   string
	FromName    string
	MailTimeout time.Duration

	// Security configuration
	APIKey         string // protects the submissions listing (empty = disabled)
	AllowedOrigins string // comma-separated CORS origins (empty = wildcard)
	RateLimit      float64
	RateBurst      int
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.SecureHeaders())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS(splitOrigins(cfg.AllowedOrigins)))
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.Logger))
	}
	if cfg.Logger != nil {
		e.Use(middleware.RequestLogger(cfg.Logger))
	}

	submissionRepo := repository.NewSubmissionRepository(cfg.DB)

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	contactHandler := handlers.NewContactHandler(submissionRepo, cfg.Sender,
		cfg.ToEmail, cfg.FromEmail, cfg.FromName, cfg.MailTimeout, cfg.Logger)

	// Health routes
	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)

	// API routes
	api := e.Group("/api")
	api.POST("/contact", contactHandler.Create)
	api.GET("/submissions", contactHandler.List, middleware.APIKeyAuth(cfg.APIKey, cfg.Logger))

	return e
}

func splitOrigins(origins string) []string {
	if origins == "" {
		return nil
	}
	return strings.Split(origins, ",")
}
