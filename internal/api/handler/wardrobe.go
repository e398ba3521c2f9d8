package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/api/response"
	"github.com/getset/getset/internal/outfit"
	"github.com/getset/getset/internal/wardrobe"
)

// WardrobeHandler handles wardrobe endpoints.
type WardrobeHandler struct {
	wardrobe *wardrobe.Service
	outfits  *outfit.Service
}

// NewWardrobeHandler creates a new WardrobeHandler.
func NewWardrobeHandler(wardrobeSvc *wardrobe.Service, outfitSvc *outfit.Service) *WardrobeHandler {
	return &WardrobeHandler{
		wardrobe: wardrobeSvc,
		outfits:  outfitSvc,
	}
}

// ListItems handles GET /v1/wardrobe - list wardrobe items with optional
// category, color, season and search filters.
func (h *WardrobeHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	opts := wardrobe.FilterOptions{
		Category: wardrobe.Category(query.Get("category")),
		Color:    query.Get("color"),
		Season:   wardrobe.Season(query.Get("season")),
		Search:   query.Get("search"),
	}

	if opts.Category != "" && !opts.Category.Valid() {
		response.BadRequest(w, r, "unknown category", []models.FieldError{
			{Field: "category", Message: "is not a known category"},
		})
		return
	}
	if opts.Season != "" && !opts.Season.Valid() {
		response.BadRequest(w, r, "unknown season", []models.FieldError{
			{Field: "season", Message: "is not a known season"},
		})
		return
	}

	items, err := h.wardrobe.List(r.Context(), opts)
	if err != nil {
		response.InternalError(w, r, "failed to list wardrobe items")
		return
	}

	response.JSON(w, r, http.StatusOK, models.WardrobeList{
		Items: toClothingItems(items),
		Total: len(items),
	})
}

// CreateItem handles POST /v1/wardrobe - add a clothing item.
func (h *WardrobeHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var input models.ClothingItemCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	item, err := h.wardrobe.Create(r.Context(), &input)
	if err != nil {
		var validationErr *wardrobe.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(w, r, "invalid clothing item", validationErr.Errors)
			return
		}
		response.InternalError(w, r, "failed to create clothing item")
		return
	}

	location := fmt.Sprintf("/v1/wardrobe/%s", item.ID)
	response.Created(w, r, location, toClothingItem(item))
}

// GetItem handles GET /v1/wardrobe/{itemId} - get a clothing item.
func (h *WardrobeHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	item, err := h.wardrobe.Get(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, wardrobe.ErrItemNotFound) {
			response.NotFound(w, r, "clothing item not found")
			return
		}
		response.InternalError(w, r, "failed to get clothing item")
		return
	}

	response.JSON(w, r, http.StatusOK, toClothingItem(item))
}

// UpdateItem handles PUT /v1/wardrobe/{itemId} - partially update a clothing item.
func (h *WardrobeHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	var input models.ClothingItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	item, err := h.wardrobe.Update(r.Context(), itemID, &input)
	if err != nil {
		var validationErr *wardrobe.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.BadRequest(w, r, "invalid clothing item", validationErr.Errors)
		case errors.Is(err, wardrobe.ErrItemNotFound):
			response.NotFound(w, r, "clothing item not found")
		default:
			response.InternalError(w, r, "failed to update clothing item")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, toClothingItem(item))
}

// DeleteItem handles DELETE /v1/wardrobe/{itemId} - remove a clothing item.
func (h *WardrobeHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	if err := h.wardrobe.Delete(r.Context(), itemID); err != nil {
		if errors.Is(err, wardrobe.ErrItemNotFound) {
			response.NotFound(w, r, "clothing item not found")
			return
		}
		response.InternalError(w, r, "failed to delete clothing item")
		return
	}

	response.NoContent(w, r)
}

// GetStats handles GET /v1/wardrobe/stats - wardrobe statistics.
func (h *WardrobeHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	items, err := h.wardrobe.List(r.Context(), wardrobe.FilterOptions{})
	if err != nil {
		response.InternalError(w, r, "failed to list wardrobe items")
		return
	}

	outfits, err := h.outfits.ListAll(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to list outfits")
		return
	}
	outfitDates := make([]time.Time, len(outfits))
	for i, o := range outfits {
		outfitDates[i] = o.Date
	}

	stats := wardrobe.ComputeStats(items, outfitDates, time.Now())

	resp := models.WardrobeStats{
		TotalItems:       stats.TotalItems,
		ItemsByCategory:  make(map[string]int, len(stats.ItemsByCategory)),
		ItemsByColor:     stats.ItemsByColor,
		ItemsBySeason:    make(map[string]int, len(stats.ItemsBySeason)),
		MostWornItems:    toClothingItems(stats.MostWornItems),
		LeastWornItems:   toClothingItems(stats.LeastWornItems),
		AverageWearCount: stats.AverageWearCount,
		OutfitsThisWeek:  stats.OutfitsThisWeek,
		OutfitsThisMonth: stats.OutfitsThisMonth,
	}
	for category, count := range stats.ItemsByCategory {
		resp.ItemsByCategory[string(category)] = count
	}
	for season, count := range stats.ItemsBySeason {
		resp.ItemsBySeason[string(season)] = count
	}

	response.JSON(w, r, http.StatusOK, resp)
}
