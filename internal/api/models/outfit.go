package models

// Outfit represents a saved outfit in API responses.
type Outfit struct {
	ID      string           `json:"id"`
	Date    Date             `json:"date"`
	Items   []string         `json:"items"`
	Photo   *string          `json:"photo,omitempty"`
	Notes   string           `json:"notes,omitempty"`
	Weather *WeatherSnapshot `json:"weather,omitempty"`
}

// OutfitList is the response for listing outfits.
type OutfitList struct {
	Items []Outfit `json:"items"`
	Total int      `json:"total"`
}

// OutfitSaveRequest is the request body for saving an outfit to a date.
type OutfitSaveRequest struct {
	Items []string `json:"items"`
	Photo *string  `json:"photo,omitempty"`
	Notes string   `json:"notes"`
	// City, when set, captures a weather snapshot at save time.
	City string `json:"city,omitempty"`
}

// RepeatCheckRequest is the request body for a repeat/similarity check.
type RepeatCheckRequest struct {
	Date  Date     `json:"date"`
	Items []string `json:"items"`
}

// RepeatWarning describes repetition detected against recent outfit history.
type RepeatWarning struct {
	HasWarning    bool     `json:"hasWarning"`
	Type          string   `json:"type"`
	Message       string   `json:"message"`
	DaysAgo       *int     `json:"daysAgo,omitempty"`
	AffectedItems []string `json:"affectedItems,omitempty"`
}

// RecentWear records the most recent prior wear of a candidate item.
type RecentWear struct {
	ItemID  string       `json:"itemId"`
	Item    ClothingItem `json:"item"`
	DaysAgo int          `json:"daysAgo"`
}

// RepeatAnalysis is the full advisory result for a candidate outfit.
type RepeatAnalysis struct {
	Warning     RepeatWarning `json:"warning"`
	RecentWear  []RecentWear  `json:"recentWear"`
	Suggestions []string      `json:"suggestions"`
}

// SimilarOutfit is one match from a similarity search.
type SimilarOutfit struct {
	Outfit Outfit         `json:"outfit"`
	Score  float64        `json:"score"`
	Reason string         `json:"reason"`
	Items  []ClothingItem `json:"items"`
}

// SimilarOutfitList is the response for similarity searches.
type SimilarOutfitList struct {
	Items []SimilarOutfit `json:"items"`
}

// SimilarByColorsRequest searches outfit history by color scheme.
type SimilarByColorsRequest struct {
	Colors []string `json:"colors"`
	Limit  int      `json:"limit,omitempty"`
}

// SimilarByStructureRequest searches outfit history by category structure.
type SimilarByStructureRequest struct {
	Categories []string `json:"categories"`
	Limit      int      `json:"limit,omitempty"`
}

// OutfitPreview is the assembled result of a builder run.
type OutfitPreview struct {
	Selection map[string]ClothingItem `json:"selection"`
	Complete  bool                    `json:"complete"`
	Harmony   *ColorAnalysis          `json:"harmony,omitempty"`
}

// RandomOutfitRequest requests a randomized outfit draw.
type RandomOutfitRequest struct {
	City string `json:"city,omitempty"`
}
