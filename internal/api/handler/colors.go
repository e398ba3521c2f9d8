package handler

import (
	"encoding/json"
	"net/http"

	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/api/response"
	"github.com/getset/getset/internal/colormatch"
)

// ColorHandler handles color harmony endpoints.
type ColorHandler struct{}

// NewColorHandler creates a new ColorHandler.
func NewColorHandler() *ColorHandler {
	return &ColorHandler{}
}

// AnalyzeColors handles POST /v1/colors/analyze - score a color combination.
func (h *ColorHandler) AnalyzeColors(w http.ResponseWriter, r *http.Request) {
	var input models.ColorAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	analysis := colormatch.Analyze(input.Colors)

	resp := models.ColorAnalysis{
		Harmonious: analysis.Harmonious,
		Message:    analysis.Message,
		Score:      analysis.Score,
	}
	if analysis.Suggestion != "" {
		suggestion := analysis.Suggestion
		resp.Suggestion = &suggestion
	}

	response.JSON(w, r, http.StatusOK, resp)
}

// SuggestColors handles POST /v1/colors/suggest - colors pairing well with
// the given combination.
func (h *ColorHandler) SuggestColors(w http.ResponseWriter, r *http.Request) {
	var input models.ColorAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if len(input.Colors) == 0 {
		response.BadRequest(w, r, "at least one color is required", []models.FieldError{
			{Field: "colors", Message: "must not be empty"},
		})
		return
	}

	response.JSON(w, r, http.StatusOK, models.ColorSuggestions{
		Colors: colormatch.Suggest(input.Colors),
	})
}
