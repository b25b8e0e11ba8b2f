package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-fulfillment/internal/api/http"
	"github.com/i474232898/weather-fulfillment/internal/config"
	"github.com/i474232898/weather-fulfillment/internal/fulfillment"
	"github.com/i474232898/weather-fulfillment/internal/geo"
	"github.com/i474232898/weather-fulfillment/internal/locale"
	"github.com/i474232898/weather-fulfillment/internal/probe"
	"github.com/i474232898/weather-fulfillment/internal/responses"
	"github.com/i474232898/weather-fulfillment/internal/vocab"
	"github.com/i474232898/weather-fulfillment/internal/weather"
	"github.com/i474232898/weather-fulfillment/internal/weather/providers"
)

func main() {
	// Load configuration (reads .env when present).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Static tables; a missing template category refuses to start.
	tables, err := vocab.Load()
	if err != nil {
		log.Fatalf("failed to load vocabulary: %v", err)
	}
	pools, err := responses.Load(nil)
	if err != nil {
		log.Fatalf("failed to load response templates: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewWWOProvider(httpClient, cfg.WWOAPIKey, cfg.WWOLanguage, cfg.WWOBaseURL)
	retriever := weather.NewRetriever(provider, cfg.MaxForecastDays)

	// Optional coordinates->city resolution.
	var resolver geo.Resolver
	if cfg.GoogleAPIKey != "" {
		resolver = geo.NewGoogleResolver(cfg.GoogleAPIKey)
	}

	validator := fulfillment.NewValidator(cfg.DefaultCity, cfg.DefaultUnit, tables, resolver)
	responder := fulfillment.NewResponder(cfg.Limits, pools, tables, locale.New(cfg.WWOLanguage))
	service := fulfillment.NewService(validator, retriever, responder)

	// Provider availability probe feeding the health endpoint.
	history := probe.NewHistory(cfg.ProbeMaxHistory, cfg.ProbeMaxAge)
	prober := probe.New(provider, cfg.DefaultCity, cfg.ProbeInterval, history)
	if err := prober.Start(); err != nil {
		log.Fatalf("failed to start provider probe: %v", err)
	}
	defer prober.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-fulfillment",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint with recent provider probe results.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-fulfillment",
			"probes":  history.Recent(),
		})
	})

	// Webhook dispatcher.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
