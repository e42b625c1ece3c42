// Command sendcontact is the mail-only deployment of the contact form:
// a single POST endpoint that validates the submission and forwards it
// to SendGrid. It runs without a database, so mail failure is fatal to
// the request and is reported directly.
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
	"github.com/labstack/echo/v4"

	"github.com/curafehealth/website-backend/internal/api/handlers"
	"github.com/curafehealth/website-backend/internal/api/middleware"
	"github.com/curafehealth/website-backend/internal/config"
	"github.com/curafehealth/website-backend/internal/logger"
	"github.com/curafehealth/website-backend/internal/mailer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadWithValidation()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	// A nil sender makes the handler report the missing credential.
	var sender mailer.Sender
	if cfg.SendGridAPIKey != "" {
		sender = mailer.NewSendGridSender(cfg.SendGridAPIKey)
	} else {
		log.Warn("SENDGRID_API_KEY not set; requests will fail with a configuration error")
	}

	relayHandler := handlers.NewRelayHandler(sender, cfg.ToEmail, cfg.FromEmail, cfg.FromName, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.SecureHeaders())
	e.Use(middleware.CORS(nil))
	e.Use(middleware.RequestLogger(log))

	// Echo answers non-POST methods on this path with 405.
	e.POST("/", relayHandler.Send)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info("starting contact relay", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down relay...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", slog.Any("error", err))
	}
}
