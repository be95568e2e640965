// Package main is the entry point for the flight booking gateway.
//
//	@title						Flight Booking Gateway API
//	@version					1.0.0
//	@description				A booking gateway that fronts a flight provider API: search with filtering, offer selection, pricing, booking and confirmation, with per-session state handoff between steps.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-booking/flight-booking-gateway/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/flight-booking/flight-booking-gateway/internal/config"

	// Import generated docs for swagger
	_ "github.com/flight-booking/flight-booking-gateway/docs"

	// Application layers
	gatewayhttp "github.com/flight-booking/flight-booking-gateway/internal/adapter/http"
	"github.com/flight-booking/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-gateway/internal/adapter/provider/amadeus"
	"github.com/flight-booking/flight-booking-gateway/internal/session"
	"github.com/flight-booking/flight-booking-gateway/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("session_backend", cfg.Session.Backend).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger, cfg.Server.AllowOrigins)

	// Setup routes
	setupRoutes(e, cfg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// setupRoutes wires the provider client, session store, use cases and handler
// onto the Echo instance.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	gateway := amadeus.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	store := newSessionStore(cfg)

	searchUC := usecase.NewFlightSearchUseCase(gateway, store)
	bookingUC := usecase.NewBookingFlowUseCase(gateway, store, nil)
	authUC := usecase.NewAuthUseCase(gateway, store)

	handler := gatewayhttp.NewGatewayHandler(searchUC, bookingUC, authUC)
	gatewayhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// newSessionStore builds the scratch store selected by SESSION_BACKEND.
func newSessionStore(cfg *config.Config) session.Store {
	if cfg.Session.Backend == config.SessionBackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		return session.NewRedisStore(client, cfg.Session.TTL)
	}
	return session.NewMemoryStore(cfg.Session.TTL, nil)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
