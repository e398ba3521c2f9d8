package handler

import (
	"net/http"
	"strconv"

	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/api/response"
	"github.com/getset/getset/internal/weather"
)

// Forecast length bounds.
const (
	defaultForecastDays = 5
	maxForecastDays     = 7
)

// WeatherHandler handles weather lookup endpoints.
type WeatherHandler struct {
	weather *weather.Service
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(weatherSvc *weather.Service) *WeatherHandler {
	return &WeatherHandler{weather: weatherSvc}
}

// GetCurrent handles GET /v1/weather/current?city= - current weather.
func (h *WeatherHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		response.BadRequest(w, r, "city is required", []models.FieldError{
			{Field: "city", Message: "is required"},
		})
		return
	}

	if h.weather == nil {
		response.ServiceUnavailable(w, r, "weather provider is not configured")
		return
	}

	snapshot, err := h.weather.Current(r.Context(), city)
	if err != nil || snapshot == nil {
		response.ServiceUnavailable(w, r, "weather data is currently unavailable")
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=300")
	response.JSON(w, r, http.StatusOK, toWeatherSnapshot(snapshot))
}

// GetForecast handles GET /v1/weather/forecast?city=&days= - daily forecast.
func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		response.BadRequest(w, r, "city is required", []models.FieldError{
			{Field: "city", Message: "is required"},
		})
		return
	}

	days := defaultForecastDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxForecastDays {
			response.BadRequest(w, r, "days must be between 1 and 7", []models.FieldError{
				{Field: "days", Message: "must be an integer between 1 and 7"},
			})
			return
		}
		days = parsed
	}

	if h.weather == nil {
		response.ServiceUnavailable(w, r, "weather provider is not configured")
		return
	}

	snapshots, err := h.weather.Forecast(r.Context(), city, days)
	if err != nil {
		response.ServiceUnavailable(w, r, "weather data is currently unavailable")
		return
	}

	resp := models.WeatherForecast{
		Location: city,
		Days:     make([]models.WeatherSnapshot, len(snapshots)),
	}
	for i := range snapshots {
		resp.Days[i] = toWeatherSnapshot(&snapshots[i])
	}

	w.Header().Set("Cache-Control", "private, max-age=300")
	response.JSON(w, r, http.StatusOK, resp)
}
