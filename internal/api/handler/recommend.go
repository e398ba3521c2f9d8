package handler

import (
	"net/http"
	"time"

	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/api/response"
	"github.com/getset/getset/internal/matcher"
	"github.com/getset/getset/internal/suggest"
	"github.com/getset/getset/internal/wardrobe"
	"github.com/getset/getset/internal/weather"
)

// RecommendationHandler handles weather-driven item recommendations and
// dressing advice.
type RecommendationHandler struct {
	wardrobe *wardrobe.Service
	weather  *weather.Service
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(wardrobeSvc *wardrobe.Service, weatherSvc *weather.Service) *RecommendationHandler {
	return &RecommendationHandler{
		wardrobe: wardrobeSvc,
		weather:  weatherSvc,
	}
}

// GetRecommendations handles GET /v1/recommendations?city=&category= -
// weather-filtered wardrobe items ranked least-worn first. Without a city
// (or when the weather lookup fails) the filter falls back to category only.
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	category := wardrobe.Category(query.Get("category"))
	if category != "" && !category.Valid() {
		response.BadRequest(w, r, "unknown category", []models.FieldError{
			{Field: "category", Message: "is not a known category"},
		})
		return
	}

	items, err := h.wardrobe.List(r.Context(), wardrobe.FilterOptions{})
	if err != nil {
		response.InternalError(w, r, "failed to list wardrobe items")
		return
	}

	var snapshot *weather.Snapshot
	if city := query.Get("city"); city != "" && h.weather != nil {
		snapshot, _ = h.weather.Current(r.Context(), city)
	}

	ranked := matcher.WeatherAppropriate(items, snapshot, category, time.Now())

	response.JSON(w, r, http.StatusOK, models.WardrobeList{
		Items: toClothingItems(ranked),
		Total: len(ranked),
	})
}

// GetSuggestions handles GET /v1/suggestions?city= - advisory dressing tips
// for the city's current weather.
func (h *RecommendationHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
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

	suggestions := suggest.ForWeather(snapshot)

	resp := models.SuggestionList{
		Summary:     suggest.Summary(snapshot),
		Suggestions: make([]models.OutfitSuggestion, len(suggestions)),
	}
	for i, s := range suggestions {
		resp.Suggestions[i] = models.OutfitSuggestion{
			Category:   string(s.Category),
			Suggestion: s.Suggestion,
			Priority:   string(s.Priority),
		}
	}

	response.JSON(w, r, http.StatusOK, resp)
}
