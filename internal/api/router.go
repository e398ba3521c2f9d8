// Package api provides the HTTP API for GetSet.
package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/getset/getset/internal/api/handler"
	"github.com/getset/getset/internal/api/middleware"
	"github.com/getset/getset/internal/outfit"
	"github.com/getset/getset/internal/trip"
	"github.com/getset/getset/internal/wardrobe"
	"github.com/getset/getset/internal/weather"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics

	WardrobeService *wardrobe.Service
	OutfitService   *outfit.Service
	TripService     *trip.Service

	// WeatherService may be nil; weather-backed endpoints then degrade
	// gracefully.
	WeatherService *weather.Service

	// PingDB checks database connectivity for readiness; nil when running
	// without a database.
	PingDB func(ctx context.Context) error
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "getset-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.PingDB, cfg.WeatherService)
	wardrobeHandler := handler.NewWardrobeHandler(cfg.WardrobeService, cfg.OutfitService)
	outfitHandler := handler.NewOutfitHandler(cfg.OutfitService, cfg.WardrobeService, cfg.WeatherService)
	colorHandler := handler.NewColorHandler()
	recommendationHandler := handler.NewRecommendationHandler(cfg.WardrobeService, cfg.WeatherService)
	weatherHandler := handler.NewWeatherHandler(cfg.WeatherService)
	tripHandler := handler.NewTripHandler(cfg.TripService)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Wardrobe endpoints - standard rate limiting
		r.Route("/wardrobe", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", wardrobeHandler.ListItems)
			r.Post("/", wardrobeHandler.CreateItem)
			r.Get("/stats", wardrobeHandler.GetStats)
			r.Route("/{itemId}", func(r chi.Router) {
				r.Get("/", wardrobeHandler.GetItem)
				r.Put("/", wardrobeHandler.UpdateItem)
				r.Delete("/", wardrobeHandler.DeleteItem)
			})
		})

		// Outfit calendar and similarity endpoints
		r.Route("/outfits", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", outfitHandler.ListOutfits)
			r.Post("/check", outfitHandler.CheckOutfit)
			r.Post("/random", outfitHandler.RandomOutfit)
			r.Route("/similar", func(r chi.Router) {
				r.Post("/colors", outfitHandler.SimilarByColors)
				r.Post("/structure", outfitHandler.SimilarByStructure)
			})
			r.Route("/{date}", func(r chi.Router) {
				r.Get("/", outfitHandler.GetOutfit)
				r.Put("/", outfitHandler.SaveOutfit)
				r.Delete("/", outfitHandler.DeleteOutfit)
				r.Get("/similar", outfitHandler.SimilarOutfits)
			})
		})

		// Color harmony endpoints
		r.Route("/colors", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Post("/analyze", colorHandler.AnalyzeColors)
			r.Post("/suggest", colorHandler.SuggestColors)
		})

		// Weather-driven recommendations - expensive, upstream provider calls
		r.With(expensiveRateLimit).Get("/recommendations", recommendationHandler.GetRecommendations)
		r.With(expensiveRateLimit).Get("/suggestions", recommendationHandler.GetSuggestions)

		// Weather lookups - expensive, upstream provider calls
		r.Route("/weather", func(r chi.Router) {
			r.Use(expensiveRateLimit)
			r.Get("/current", weatherHandler.GetCurrent)
			r.Get("/forecast", weatherHandler.GetForecast)
		})

		// Trip planning endpoints
		r.Route("/trips", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", tripHandler.ListTrips)
			r.Post("/", tripHandler.CreateTrip)
			r.Route("/{tripId}", func(r chi.Router) {
				r.Get("/", tripHandler.GetTrip)
				r.Put("/", tripHandler.UpdateTrip)
				r.Delete("/", tripHandler.DeleteTrip)
				r.Put("/outfits/{date}", tripHandler.AssignOutfit)
				r.Post("/packing", tripHandler.GeneratePackingList)
			})
		})
	})

	return r
}
