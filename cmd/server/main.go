package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/curafehealth/website-backend/internal/api"
	"github.com/curafehealth/website-backend/internal/config"
	"github.com/curafehealth/website-backend/internal/database"
	"github.com/curafehealth/website-backend/internal/logger"
	"github.com/curafehealth/website-backend/internal/mailer"
)

func main() {
	// .env is optional, matching the original deployment
	_ = godotenv.Load()

	cfg, err := config.LoadWithValidation()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	cfg.LogConfig(log)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	sender := buildSender(cfg, log)

	e := api.NewRouter(&api.RouterConfig{
		DB:             db,
		Sender:         sender,
		Logger:         log,
		ToEmail:        cfg.ToEmail,
		FromEmail:      cfg.FromEmail,
		FromName:       cfg.FromName,
		MailTimeout:    cfg.MailTimeout,
		APIKey:         cfg.APIKey,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      cfg.RateLimitRequests,
		RateBurst:      cfg.RateLimitBurst,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info("starting contact API server", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", slog.Any("error", err))
	}
	log.Info("server stopped")
}

// buildSender selects the mail transport from configuration: SMTP when
// a mail host is set, SendGrid when only the API key is present, and
// the disabled transport otherwise. Missing mail configuration never
// blocks accepting and persisting submissions.
func buildSender(cfg *config.Config, log *slog.Logger) mailer.Sender {
	switch {
	case cfg.MailConfigured():
		log.Info("using SMTP mail transport",
			slog.String("host", cfg.MailHost), slog.Int("port", cfg.MailPort))
		return mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.MailHost,
			Port:     cfg.MailPort,
			Username: cfg.MailUser,
			Password: cfg.MailPass,
			SSL:      cfg.MailSecure,
		})
	case cfg.SendGridAPIKey != "":
		log.Info("using SendGrid mail transport")
		return mailer.NewSendGridSender(cfg.SendGridAPIKey)
	default:
		log.Warn("no mail transport configured; submissions will be stored without email")
		return mailer.Disabled{}
	}
}
