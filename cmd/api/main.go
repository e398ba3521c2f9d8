// Package main provides the entrypoint for the GetSet API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/getset/getset/internal/api"
	"github.com/getset/getset/internal/api/middleware"
	"github.com/getset/getset/internal/database"
	"github.com/getset/getset/internal/outfit"
	"github.com/getset/getset/internal/telemetry"
	"github.com/getset/getset/internal/trip"
	"github.com/getset/getset/internal/wardrobe"
	"github.com/getset/getset/internal/weather"
	"github.com/getset/getset/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "getset-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting GetSet API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Storage: PostgreSQL by default, in-memory with DB_DISABLED=true
	// (useful for local single-session runs).
	var (
		wardrobeRepo wardrobe.Repository
		outfitRepo   outfit.Repository
		tripRepo     trip.Repository
		pingDB       func(ctx context.Context) error
	)

	if os.Getenv("DB_DISABLED") == "true" {
		wardrobeRepo = wardrobe.NewInMemoryRepository()
		outfitRepo = outfit.NewInMemoryRepository()
		tripRepo = trip.NewInMemoryRepository()
		log.Info().Msg("running on in-memory storage")
	} else {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")

		wardrobeRepo = wardrobe.NewPostgresRepository(pool)
		outfitRepo = outfit.NewPostgresRepository(pool)
		tripRepo = trip.NewPostgresRepository(pool)
		pingDB = pool.Ping
	}

	// Weather service (optional; requires an OpenWeatherMap API key)
	var weatherService *weather.Service
	if apiKey := os.Getenv("OPENWEATHER_API_KEY"); apiKey != "" {
		cacheTTL := 30 * time.Minute
		if raw := os.Getenv("WEATHER_CACHE_TTL"); raw != "" {
			if parsed, parseErr := time.ParseDuration(raw); parseErr == nil {
				cacheTTL = parsed
			} else {
				log.Warn().Str("value", raw).Msg("invalid WEATHER_CACHE_TTL, using default")
			}
		}

		owmClient := openweathermap.NewClient(openweathermap.ClientConfig{
			APIKey: apiKey,
			Logger: log,
		})
		weatherService = weather.NewService(weather.ServiceConfig{
			Provider: owmClient,
			Logger:   log,
			CacheTTL: cacheTTL,
		})
		log.Info().Dur("cache_ttl", cacheTTL).Msg("weather service initialized")
	} else {
		log.Warn().Msg("OPENWEATHER_API_KEY not set - weather endpoints will be unavailable")
	}

	// Initialize domain services
	wardrobeService := wardrobe.NewService(wardrobeRepo)
	outfitService := outfit.NewService(outfitRepo, wardrobeService, log)
	tripService := trip.NewService(tripRepo, weatherService, log)
	log.Info().Msg("domain services initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		BuildTime:       BuildTime,
		Logger:          log,
		ServiceName:     serviceName,
		Metrics:         metrics,
		WardrobeService: wardrobeService,
		OutfitService:   outfitService,
		TripService:     tripService,
		WeatherService:  weatherService,
		PingDB:          pingDB,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
