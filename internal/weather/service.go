package weather

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Provider defines the interface for weather data providers.
type Provider interface {
	// Current fetches current weather for a city.
	Current(ctx context.Context, city string) (*Snapshot, error)

	// Forecast fetches a daily forecast for a city.
	Forecast(ctx context.Context, city string, days int) ([]Snapshot, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the weather data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// CacheTTL is how long to cache weather data (default: 30 minutes).
	CacheTTL time.Duration

	// StaleIfErrorTTL allows serving stale data on provider errors (default: 2 hours).
	StaleIfErrorTTL time.Duration
}

// Service provides weather data with a per-location TTL cache. Current
// conditions are keyed by city; forecasts by city and day count.
type Service struct {
	provider        Provider
	logger          zerolog.Logger
	cacheTTL        time.Duration
	staleIfErrorTTL time.Duration

	mu              sync.RWMutex
	currentCache    map[string]*cachedCurrent
	forecastCache   map[string]*cachedForecast
	lastCleanup     time.Time
	cleanupInterval time.Duration
}

type cachedCurrent struct {
	snapshot  *Snapshot
	fetchedAt time.Time
	expiresAt time.Time
}

type cachedForecast struct {
	days      []Snapshot
	fetchedAt time.Time
	expiresAt time.Time
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Minute
	}

	staleIfErrorTTL := cfg.StaleIfErrorTTL
	if staleIfErrorTTL == 0 {
		staleIfErrorTTL = 2 * time.Hour
	}

	return &Service{
		provider:        cfg.Provider,
		logger:          cfg.Logger,
		cacheTTL:        cacheTTL,
		staleIfErrorTTL: staleIfErrorTTL,
		currentCache:    make(map[string]*cachedCurrent),
		forecastCache:   make(map[string]*cachedForecast),
		cleanupInterval: 10 * time.Minute,
	}
}

// Current returns current weather for a city. Uses cached data if available
// and not expired; returns nil without error if no provider is configured.
func (s *Service) Current(ctx context.Context, city string) (*Snapshot, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrNoLocation
	}
	if s.provider == nil {
		return nil, nil
	}

	cacheKey := currentKey(city)

	s.mu.RLock()
	if cached, ok := s.currentCache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		return cached.snapshot, nil
	}
	s.mu.RUnlock()

	return s.fetchCurrent(ctx, city, cacheKey)
}

// Forecast returns a daily forecast for a city, at most days entries.
// Returns an empty slice on provider failure with no usable stale data.
func (s *Service) Forecast(ctx context.Context, city string, days int) ([]Snapshot, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrNoLocation
	}
	if s.provider == nil {
		return nil, nil
	}
	if days <= 0 {
		days = 5
	}

	cacheKey := forecastKey(city, days)

	s.mu.RLock()
	if cached, ok := s.forecastCache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		return cached.days, nil
	}
	s.mu.RUnlock()

	return s.fetchForecast(ctx, city, days, cacheKey)
}

// fetchCurrent fetches current weather from the provider and updates the cache.
func (s *Service) fetchCurrent(ctx context.Context, city, cacheKey string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check cache
	if cached, ok := s.currentCache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		return cached.snapshot, nil
	}

	s.logger.Debug().
		Str("city", city).
		Str("provider", s.provider.Name()).
		Msg("fetching current weather from provider")

	snapshot, err := s.provider.Current(ctx, city)
	if err != nil {
		s.logger.Error().Err(err).
			Str("city", city).
			Msg("failed to fetch current weather")

		if cached, ok := s.currentCache[cacheKey]; ok {
			if time.Now().Before(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
				s.logger.Warn().
					Time("fetched_at", cached.fetchedAt).
					Msg("serving stale weather data due to provider error")
				return cached.snapshot, nil
			}
		}

		return nil, ErrProviderUnavailable
	}

	now := time.Now()
	s.currentCache[cacheKey] = &cachedCurrent{
		snapshot:  snapshot,
		fetchedAt: now,
		expiresAt: now.Add(s.cacheTTL),
	}

	s.cleanupIfNeeded()

	return snapshot, nil
}

// fetchForecast fetches a forecast from the provider and updates the cache.
func (s *Service) fetchForecast(ctx context.Context, city string, days int, cacheKey string) ([]Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check cache
	if cached, ok := s.forecastCache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		return cached.days, nil
	}

	s.logger.Debug().
		Str("city", city).
		Int("days", days).
		Str("provider", s.provider.Name()).
		Msg("fetching forecast from provider")

	forecast, err := s.provider.Forecast(ctx, city, days)
	if err != nil {
		s.logger.Error().Err(err).
			Str("city", city).
			Msg("failed to fetch forecast")

		if cached, ok := s.forecastCache[cacheKey]; ok {
			if time.Now().Before(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
				s.logger.Warn().
					Time("fetched_at", cached.fetchedAt).
					Msg("serving stale forecast data due to provider error")
				return cached.days, nil
			}
		}

		return nil, ErrProviderUnavailable
	}

	now := time.Now()
	s.forecastCache[cacheKey] = &cachedForecast{
		days:      forecast,
		fetchedAt: now,
		expiresAt: now.Add(s.cacheTTL),
	}

	s.cleanupIfNeeded()

	return forecast, nil
}

func currentKey(city string) string {
	return "current:" + strings.ToLower(city)
}

func forecastKey(city string, days int) string {
	return fmt.Sprintf("forecast:%s:%d", strings.ToLower(city), days)
}

// cleanupIfNeeded removes long-expired entries if the cleanup interval has passed.
func (s *Service) cleanupIfNeeded() {
	now := time.Now()
	if now.Sub(s.lastCleanup) < s.cleanupInterval {
		return
	}

	s.lastCleanup = now
	expired := 0

	for key, cached := range s.currentCache {
		if now.After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
			delete(s.currentCache, key)
			expired++
		}
	}

	for key, cached := range s.forecastCache {
		if now.After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
			delete(s.forecastCache, key)
			expired++
		}
	}

	if expired > 0 {
		s.logger.Debug().
			Int("expired_entries", expired).
			Msg("cleaned up expired weather cache entries")
	}
}

// InvalidateCache clears all cached data.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentCache = make(map[string]*cachedCurrent)
	s.forecastCache = make(map[string]*cachedForecast)
}

// CacheStats contains cache statistics.
type CacheStats struct {
	CurrentEntries       int
	CurrentFreshEntries  int
	ForecastEntries      int
	ForecastFreshEntries int
	Provider             string
}

// Stats returns cache statistics.
func (s *Service) Stats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	currentFresh := 0
	forecastFresh := 0

	for _, c := range s.currentCache {
		if now.Before(c.expiresAt) {
			currentFresh++
		}
	}
	for _, c := range s.forecastCache {
		if now.Before(c.expiresAt) {
			forecastFresh++
		}
	}

	providerName := "none"
	if s.provider != nil {
		providerName = s.provider.Name()
	}

	return CacheStats{
		CurrentEntries:       len(s.currentCache),
		CurrentFreshEntries:  currentFresh,
		ForecastEntries:      len(s.forecastCache),
		ForecastFreshEntries: forecastFresh,
		Provider:             providerName,
	}
}
