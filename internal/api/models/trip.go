package models

// Trip represents a planned trip in API responses.
type Trip struct {
	ID          string            `json:"id"`
	Destination string            `json:"destination"`
	StartDate   Date              `json:"startDate"`
	EndDate     Date              `json:"endDate"`
	Type        string            `json:"type"`
	Outfits     map[string]string `json:"outfits"`
	Weather     []WeatherSnapshot `json:"weather"`
	PackingList []string          `json:"packingList"`
	Notes       string            `json:"notes,omitempty"`
}

// TripList is the response for listing trips.
type TripList struct {
	Items []Trip `json:"items"`
	Total int    `json:"total"`
}

// TripCreateRequest is the request body for creating a trip.
type TripCreateRequest struct {
	Destination string   `json:"destination"`
	StartDate   Date     `json:"startDate"`
	EndDate     Date     `json:"endDate"`
	Type        string   `json:"type"`
	PackingList []string `json:"packingList"`
	Notes       string   `json:"notes"`
}

// TripOutfitAssignRequest is the request body for assigning an outfit to one
// trip day.
type TripOutfitAssignRequest struct {
	OutfitID string `json:"outfitId"`
}

// TripUpdateRequest is the request body for updating a trip.
// Nil fields are left unchanged.
type TripUpdateRequest struct {
	Destination *string           `json:"destination,omitempty"`
	StartDate   *Date             `json:"startDate,omitempty"`
	EndDate     *Date             `json:"endDate,omitempty"`
	Type        *string           `json:"type,omitempty"`
	Outfits     map[string]string `json:"outfits,omitempty"`
	PackingList []string          `json:"packingList,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
}
