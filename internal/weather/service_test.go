package weather_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getset/getset/internal/weather"
)

// mockProvider is a controllable weather provider for tests.
type mockProvider struct {
	currentCalls  atomic.Int32
	forecastCalls atomic.Int32

	snapshot *weather.Snapshot
	forecast []weather.Snapshot
	err      error
}

func (m *mockProvider) Current(_ context.Context, city string) (*weather.Snapshot, error) {
	m.currentCalls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	snapshot := *m.snapshot
	snapshot.Location = city
	return &snapshot, nil
}

func (m *mockProvider) Forecast(_ context.Context, _ string, days int) ([]weather.Snapshot, error) {
	m.forecastCalls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	if len(m.forecast) > days {
		return m.forecast[:days], nil
	}
	return m.forecast, nil
}

func (m *mockProvider) Name() string {
	return "mock"
}

func testSnapshot() *weather.Snapshot {
	return &weather.Snapshot{
		Temp:      18.5,
		FeelsLike: 17.0,
		Condition: weather.ConditionClouds,
		Humidity:  65,
		WindSpeed: 12.0,
		Date:      time.Now(),
	}
}

func TestService_Current(t *testing.T) {
	provider := &mockProvider{snapshot: testSnapshot()}
	svc := weather.NewService(weather.ServiceConfig{Provider: provider})

	snapshot, err := svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, 18.5, snapshot.Temp)
	assert.Equal(t, "Amsterdam", snapshot.Location)
	assert.Equal(t, int32(1), provider.currentCalls.Load())
}

func TestService_Current_ServesFromCache(t *testing.T) {
	provider := &mockProvider{snapshot: testSnapshot()}
	svc := weather.NewService(weather.ServiceConfig{
		Provider: provider,
		CacheTTL: time.Hour,
	})

	_, err := svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)
	_, err = svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)

	assert.Equal(t, int32(1), provider.currentCalls.Load(), "second call should hit the cache")
}

func TestService_Current_CacheKeyIsCaseInsensitive(t *testing.T) {
	provider := &mockProvider{snapshot: testSnapshot()}
	svc := weather.NewService(weather.ServiceConfig{
		Provider: provider,
		CacheTTL: time.Hour,
	})

	_, err := svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)
	_, err = svc.Current(context.Background(), "amsterdam")
	require.NoError(t, err)

	assert.Equal(t, int32(1), provider.currentCalls.Load())
}

func TestService_Current_ExpiredCacheRefetches(t *testing.T) {
	provider := &mockProvider{snapshot: testSnapshot()}
	svc := weather.NewService(weather.ServiceConfig{
		Provider: provider,
		CacheTTL: time.Nanosecond,
	})

	_, err := svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)

	assert.Equal(t, int32(2), provider.currentCalls.Load())
}

func TestService_Current_EmptyCity(t *testing.T) {
	svc := weather.NewService(weather.ServiceConfig{
		Provider: &mockProvider{snapshot: testSnapshot()},
	})

	_, err := svc.Current(context.Background(), "   ")
	assert.ErrorIs(t, err, weather.ErrNoLocation)
}

func TestService_Current_NoProvider(t *testing.T) {
	svc := weather.NewService(weather.ServiceConfig{})

	snapshot, err := svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestService_Current_ProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("connection refused")}
	svc := weather.NewService(weather.ServiceConfig{Provider: provider})

	_, err := svc.Current(context.Background(), "Amsterdam")
	assert.ErrorIs(t, err, weather.ErrProviderUnavailable)
}

func TestService_Current_StaleIfError(t *testing.T) {
	provider := &mockProvider{snapshot: testSnapshot()}
	svc := weather.NewService(weather.ServiceConfig{
		Provider:        provider,
		CacheTTL:        time.Nanosecond,
		StaleIfErrorTTL: time.Hour,
	})

	// Prime the cache, then let it expire and break the provider.
	_, err := svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	provider.err = errors.New("connection refused")

	snapshot, err := svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 18.5, snapshot.Temp)
}

func TestService_Forecast(t *testing.T) {
	provider := &mockProvider{
		forecast: []weather.Snapshot{
			{Temp: 15, Condition: weather.ConditionClear},
			{Temp: 12, Condition: weather.ConditionRain},
			{Temp: 9, Condition: weather.ConditionClouds},
		},
	}
	svc := weather.NewService(weather.ServiceConfig{Provider: provider})

	forecast, err := svc.Forecast(context.Background(), "Berlin", 3)
	require.NoError(t, err)
	require.Len(t, forecast, 3)
	assert.Equal(t, weather.ConditionRain, forecast[1].Condition)
}

func TestService_Forecast_CachedPerDayCount(t *testing.T) {
	provider := &mockProvider{
		forecast: []weather.Snapshot{
			{Temp: 15}, {Temp: 12}, {Temp: 9}, {Temp: 11}, {Temp: 14},
		},
	}
	svc := weather.NewService(weather.ServiceConfig{
		Provider: provider,
		CacheTTL: time.Hour,
	})

	_, err := svc.Forecast(context.Background(), "Berlin", 3)
	require.NoError(t, err)
	_, err = svc.Forecast(context.Background(), "Berlin", 3)
	require.NoError(t, err)
	assert.Equal(t, int32(1), provider.forecastCalls.Load())

	// A different day count is a different cache entry.
	_, err = svc.Forecast(context.Background(), "Berlin", 5)
	require.NoError(t, err)
	assert.Equal(t, int32(2), provider.forecastCalls.Load())
}

func TestService_Forecast_DefaultsDays(t *testing.T) {
	provider := &mockProvider{
		forecast: []weather.Snapshot{
			{Temp: 15}, {Temp: 12}, {Temp: 9}, {Temp: 11}, {Temp: 14}, {Temp: 16},
		},
	}
	svc := weather.NewService(weather.ServiceConfig{Provider: provider})

	forecast, err := svc.Forecast(context.Background(), "Berlin", 0)
	require.NoError(t, err)
	assert.Len(t, forecast, 5)
}

func TestService_Forecast_ProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("timeout")}
	svc := weather.NewService(weather.ServiceConfig{Provider: provider})

	_, err := svc.Forecast(context.Background(), "Berlin", 5)
	assert.ErrorIs(t, err, weather.ErrProviderUnavailable)
}

func TestService_InvalidateCache(t *testing.T) {
	provider := &mockProvider{snapshot: testSnapshot()}
	svc := weather.NewService(weather.ServiceConfig{
		Provider: provider,
		CacheTTL: time.Hour,
	})

	_, err := svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)

	svc.InvalidateCache()

	_, err = svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)
	assert.Equal(t, int32(2), provider.currentCalls.Load())
}

func TestService_Stats(t *testing.T) {
	provider := &mockProvider{
		snapshot: testSnapshot(),
		forecast: []weather.Snapshot{{Temp: 15}},
	}
	svc := weather.NewService(weather.ServiceConfig{
		Provider: provider,
		CacheTTL: time.Hour,
	})

	_, err := svc.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)
	_, err = svc.Current(context.Background(), "Berlin")
	require.NoError(t, err)
	_, err = svc.Forecast(context.Background(), "Berlin", 5)
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 2, stats.CurrentEntries)
	assert.Equal(t, 2, stats.CurrentFreshEntries)
	assert.Equal(t, 1, stats.ForecastEntries)
	assert.Equal(t, 1, stats.ForecastFreshEntries)
	assert.Equal(t, "mock", stats.Provider)
}

func TestService_Stats_NoProvider(t *testing.T) {
	svc := weather.NewService(weather.ServiceConfig{})

	stats := svc.Stats()
	assert.Equal(t, "none", stats.Provider)
	assert.Zero(t, stats.CurrentEntries)
}
