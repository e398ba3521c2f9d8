package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/getset/getset/internal/provider/resilience"
	"github.com/getset/getset/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
)

// mpsToKmh converts wind speed from m/s to km/h.
const mpsToKmh = 3.6

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to OpenWeatherMap API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}
	resilience.GlobalRegistry.Register(ProviderName, httpClient)

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Current fetches current weather for a city.
func (c *Client) Current(ctx context.Context, city string) (*weather.Snapshot, error) {
	reqURL := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s",
		c.baseURL, url.QueryEscape(city), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		resilience.GlobalRegistry.RecordFailure(ProviderName, err)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		resilience.GlobalRegistry.RecordFailure(ProviderName, err)
		return nil, err
	}

	var owmResp currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	resilience.GlobalRegistry.RecordSuccess(ProviderName)
	return c.toSnapshot(&owmResp), nil
}

// Forecast fetches a daily forecast for a city. The 3-hourly feed is
// collapsed to one entry per day, preferring the slot nearest noon.
func (c *Client) Forecast(ctx context.Context, city string, days int) ([]weather.Snapshot, error) {
	reqURL := fmt.Sprintf("%s/forecast?q=%s&units=metric&appid=%s",
		c.baseURL, url.QueryEscape(city), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		resilience.GlobalRegistry.RecordFailure(ProviderName, err)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		resilience.GlobalRegistry.RecordFailure(ProviderName, err)
		return nil, err
	}

	var owmResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	resilience.GlobalRegistry.RecordSuccess(ProviderName)
	return c.toDailyForecast(&owmResp, days), nil
}

// toSnapshot converts an OpenWeatherMap response to the domain model.
func (c *Client) toSnapshot(resp *currentWeatherResponse) *weather.Snapshot {
	snapshot := &weather.Snapshot{
		Temp:      resp.Main.Temp,
		FeelsLike: resp.Main.FeelsLike,
		Humidity:  resp.Main.Humidity,
		WindSpeed: resp.Wind.Speed * mpsToKmh,
		Date:      time.Now(),
		Location:  resp.Name,
	}

	if len(resp.Weather) > 0 {
		snapshot.Condition = mapConditionCode(resp.Weather[0].ID)
		snapshot.Description = resp.Weather[0].Description
		snapshot.Icon = resp.Weather[0].Icon
	} else {
		snapshot.Condition = weather.ConditionClear
	}

	return snapshot
}

// toDailyForecast collapses the 3-hourly forecast feed to one snapshot per
// day, preferring the entry nearest 12:00 local time.
func (c *Client) toDailyForecast(resp *forecastResponse, days int) []weather.Snapshot {
	type daily struct {
		entry forecastEntry
		hour  int
	}

	byDay := make(map[string]daily)
	for _, entry := range resp.List {
		ts := time.Unix(entry.Dt, 0).UTC()
		dateKey := ts.Format("2006-01-02")
		hour := ts.Hour()

		existing, ok := byDay[dateKey]
		if !ok || absInt(hour-12) < absInt(existing.hour-12) {
			byDay[dateKey] = daily{entry: entry, hour: hour}
		}
	}

	dateKeys := make([]string, 0, len(byDay))
	for key := range byDay {
		dateKeys = append(dateKeys, key)
	}
	sort.Strings(dateKeys)
	if len(dateKeys) > days {
		dateKeys = dateKeys[:days]
	}

	snapshots := make([]weather.Snapshot, 0, len(dateKeys))
	for _, key := range dateKeys {
		entry := byDay[key].entry
		snapshot := weather.Snapshot{
			Temp:      entry.Main.Temp,
			FeelsLike: entry.Main.FeelsLike,
			Humidity:  entry.Main.Humidity,
			WindSpeed: entry.Wind.Speed * mpsToKmh,
			Date:      time.Unix(entry.Dt, 0).UTC(),
			Location:  resp.City.Name,
		}
		if len(entry.Weather) > 0 {
			snapshot.Condition = mapConditionCode(entry.Weather[0].ID)
			snapshot.Description = entry.Weather[0].Description
			snapshot.Icon = entry.Weather[0].Icon
		} else {
			snapshot.Condition = weather.ConditionClear
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// mapConditionCode maps an OpenWeatherMap condition code to the domain
// condition.
func mapConditionCode(code int) weather.Condition {
	switch {
	case code >= 200 && code < 300:
		return weather.ConditionThunderstorm
	case code >= 300 && code < 400:
		return weather.ConditionDrizzle
	case code >= 500 && code < 600:
		return weather.ConditionRain
	case code >= 600 && code < 700:
		return weather.ConditionSnow
	case code >= 700 && code < 800:
		if code == 741 {
			return weather.ConditionFog
		}
		return weather.ConditionMist
	case code == 800:
		return weather.ConditionClear
	case code > 800:
		return weather.ConditionClouds
	default:
		return weather.ConditionClear
	}
}

// OpenWeatherMap API response structures.

type currentWeatherResponse struct {
	Weather []weatherDescriptor `json:"weather"`
	Main    mainMetrics         `json:"main"`
	Wind    windMetrics         `json:"wind"`
	Dt      int64               `json:"dt"`
	Name    string              `json:"name"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

type forecastEntry struct {
	Dt      int64               `json:"dt"`
	Main    mainMetrics         `json:"main"`
	Weather []weatherDescriptor `json:"weather"`
	Wind    windMetrics         `json:"wind"`
}

type weatherDescriptor struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainMetrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type windMetrics struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// Ensure Client implements the weather Provider interface.
var _ weather.Provider = (*Client)(nil)
