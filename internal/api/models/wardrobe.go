package models

// ClothingItem represents a clothing item in API responses.
type ClothingItem struct {
	ID        string     `json:"id"`
	Image     string     `json:"image,omitempty"`
	Category  string     `json:"category"`
	Color     string     `json:"color"`
	Seasons   []string   `json:"seasons"`
	Notes     string     `json:"notes,omitempty"`
	WearCount int        `json:"wearCount"`
	LastWorn  *Date      `json:"lastWorn,omitempty"`
	CreatedAt Timestamp  `json:"createdAt"`
}

// ClothingItemCreateRequest is the request body for creating an item.
type ClothingItemCreateRequest struct {
	Image    string   `json:"image"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Seasons  []string `json:"seasons"`
	Notes    string   `json:"notes"`
}

// ClothingItemUpdateRequest is the request body for updating an item.
// Nil fields are left unchanged.
type ClothingItemUpdateRequest struct {
	Image    *string  `json:"image,omitempty"`
	Category *string  `json:"category,omitempty"`
	Color    *string  `json:"color,omitempty"`
	Seasons  []string `json:"seasons,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// WardrobeList is the response for listing wardrobe items.
type WardrobeList struct {
	Items []ClothingItem `json:"items"`
	Total int            `json:"total"`
}

// ColorCount is one entry of a color distribution.
type ColorCount struct {
	Color      string `json:"color"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// CategoryCount is one entry of a category distribution.
type CategoryCount struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// WardrobeStats summarizes the wardrobe and recent outfit activity.
type WardrobeStats struct {
	TotalItems       int             `json:"totalItems"`
	ItemsByCategory  map[string]int  `json:"itemsByCategory"`
	ItemsByColor     map[string]int  `json:"itemsByColor"`
	ItemsBySeason    map[string]int  `json:"itemsBySeason"`
	MostWornItems    []ClothingItem  `json:"mostWornItems"`
	LeastWornItems   []ClothingItem  `json:"leastWornItems"`
	AverageWearCount float64         `json:"averageWearCount"`
	OutfitsThisWeek  int             `json:"outfitsThisWeek"`
	OutfitsThisMonth int             `json:"outfitsThisMonth"`
}
