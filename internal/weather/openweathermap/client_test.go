package openweathermap_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getset/getset/internal/provider/resilience"
	"github.com/getset/getset/internal/weather"
	"github.com/getset/getset/internal/weather/openweathermap"
)

func fastTestClient(baseURL string) *openweathermap.Client {
	cfg := resilience.DefaultClientConfig("test")
	cfg.InitialInterval = 5 * time.Millisecond
	cfg.MaxInterval = 10 * time.Millisecond

	return openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    baseURL,
		HTTPClient: resilience.NewClient(cfg),
	})
}

func TestClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Amsterdam", r.URL.Query().Get("q"))
		assert.Equal(t, "****", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		response := map[string]interface{}{
			"weather": []map[string]interface{}{
				{
					"id":          800,
					"main":        "Clear",
					"description": "clear sky",
					"icon":        "01d",
				},
			},
			"main": map[string]float64{
				"temp":       18.5,
				"feels_like": 17.8,
				"humidity":   72,
			},
			"wind": map[string]float64{
				"speed": 5.0,
				"deg":   220.0,
			},
			"dt":   time.Now().Unix(),
			"name": "Amsterdam",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := fastTestClient(server.URL)

	snapshot, err := client.Current(context.Background(), "Amsterdam")
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, 18.5, snapshot.Temp)
	assert.Equal(t, 17.8, snapshot.FeelsLike)
	assert.Equal(t, 72, snapshot.Humidity)
	assert.InDelta(t, 18.0, snapshot.WindSpeed, 0.001) // 5 m/s -> 18 km/h
	assert.Equal(t, weather.ConditionClear, snapshot.Condition)
	assert.Equal(t, "clear sky", snapshot.Description)
	assert.Equal(t, "01d", snapshot.Icon)
	assert.Equal(t, "Amsterdam", snapshot.Location)
}

func TestClient_Current_ConditionCodes(t *testing.T) {
	codes := []struct {
		name     string
		code     int
		expected weather.Condition
	}{
		{"Thunderstorm", 211, weather.ConditionThunderstorm},
		{"Drizzle", 301, weather.ConditionDrizzle},
		{"Rain", 501, weather.ConditionRain},
		{"Snow", 601, weather.ConditionSnow},
		{"Mist", 701, weather.ConditionMist},
		{"Fog", 741, weather.ConditionFog},
		{"Clear", 800, weather.ConditionClear},
		{"FewClouds", 801, weather.ConditionClouds},
		{"Overcast", 804, weather.ConditionClouds},
	}

	for _, tc := range codes {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				response := map[string]interface{}{
					"weather": []map[string]interface{}{
						{"id": tc.code, "description": "test"},
					},
					"main": map[string]float64{"temp": 20.0, "humidity": 50},
					"wind": map[string]float64{"speed": 2.0},
					"dt":   time.Now().Unix(),
					"name": "Testville",
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(response)
			}))
			defer server.Close()

			snapshot, err := fastTestClient(server.URL).Current(context.Background(), "Testville")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, snapshot.Condition)
		})
	}
}

func TestClient_Forecast_CollapsesToDaily(t *testing.T) {
	// Two days of 3-hourly entries. The slot nearest noon should win.
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	entry := func(ts time.Time, temp float64, code int) map[string]interface{} {
		return map[string]interface{}{
			"dt": ts.Unix(),
			"main": map[string]float64{
				"temp":       temp,
				"feels_like": temp - 1,
				"humidity":   60,
			},
			"weather": []map[string]interface{}{
				{"id": code, "description": "test", "icon": "10d"},
			},
			"wind": map[string]float64{"speed": 3.0},
		}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))

		response := map[string]interface{}{
			"city": map[string]interface{}{"name": "Berlin"},
			"list": []map[string]interface{}{
				entry(day1.Add(6*time.Hour), 5.0, 500),
				entry(day1.Add(12*time.Hour), 9.0, 800),
				entry(day1.Add(18*time.Hour), 7.0, 801),
				entry(day2.Add(9*time.Hour), 4.0, 600),
				entry(day2.Add(15*time.Hour), 6.0, 803),
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	forecast, err := fastTestClient(server.URL).Forecast(context.Background(), "Berlin", 7)
	require.NoError(t, err)
	require.Len(t, forecast, 2)

	// Day one keeps the 12:00 slot.
	assert.Equal(t, 9.0, forecast[0].Temp)
	assert.Equal(t, weather.ConditionClear, forecast[0].Condition)
	assert.Equal(t, "Berlin", forecast[0].Location)

	// Day two: 09:00 and 15:00 are equidistant from noon, first wins.
	assert.Equal(t, 4.0, forecast[1].Temp)
	assert.Equal(t, weather.ConditionSnow, forecast[1].Condition)
	assert.True(t, forecast[0].Date.Before(forecast[1].Date))
}

func TestClient_Forecast_CapsDays(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		list := make([]map[string]interface{}, 0, 5)
		for i := 0; i < 5; i++ {
			list = append(list, map[string]interface{}{
				"dt":      base.AddDate(0, 0, i).Unix(),
				"main":    map[string]float64{"temp": 10.0, "humidity": 50},
				"weather": []map[string]interface{}{{"id": 800}},
				"wind":    map[string]float64{"speed": 1.0},
			})
		}
		response := map[string]interface{}{
			"city": map[string]interface{}{"name": "Oslo"},
			"list": list,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	forecast, err := fastTestClient(server.URL).Forecast(context.Background(), "Oslo", 3)
	require.NoError(t, err)
	assert.Len(t, forecast, 3)
}

func TestClient_Current_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := fastTestClient(server.URL).Current(context.Background(), "Amsterdam")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Current_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fastTestClient(server.URL).Current(ctx, "Amsterdam")
	require.Error(t, err)
}

func TestClient_Name(t *testing.T) {
	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey: "****",
	})

	assert.Equal(t, "openweathermap", client.Name())
}
