package models

// ColorAnalysisRequest is the request body for a color harmony analysis.
type ColorAnalysisRequest struct {
	Colors []string `json:"colors"`
}

// ColorAnalysis is the verdict of a color harmony analysis.
type ColorAnalysis struct {
	Harmonious bool    `json:"harmonious"`
	Message    string  `json:"message"`
	Suggestion *string `json:"suggestion,omitempty"`
	Score      int     `json:"score"`
}

// ColorSuggestions lists colors that would pair well with the input.
type ColorSuggestions struct {
	Colors []string `json:"colors"`
}

// OutfitSuggestion is one advisory suggestion for current weather.
type OutfitSuggestion struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// SuggestionList is the response for weather-based outfit advice.
type SuggestionList struct {
	Summary     string             `json:"summary"`
	Suggestions []OutfitSuggestion `json:"suggestions"`
}
