package handler

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/api/response"
	"github.com/getset/getset/internal/builder"
	"github.com/getset/getset/internal/colormatch"
	"github.com/getset/getset/internal/matcher"
	"github.com/getset/getset/internal/outfit"
	"github.com/getset/getset/internal/repeat"
	"github.com/getset/getset/internal/wardrobe"
	"github.com/getset/getset/internal/weather"
)

// defaultSimilarLimit caps similarity search results when the client does not
// specify a limit.
const defaultSimilarLimit = 10

// OutfitHandler handles outfit calendar and similarity endpoints.
type OutfitHandler struct {
	outfits  *outfit.Service
	wardrobe *wardrobe.Service
	weather  *weather.Service
}

// NewOutfitHandler creates a new OutfitHandler.
func NewOutfitHandler(outfitSvc *outfit.Service, wardrobeSvc *wardrobe.Service, weatherSvc *weather.Service) *OutfitHandler {
	return &OutfitHandler{
		outfits:  outfitSvc,
		wardrobe: wardrobeSvc,
		weather:  weatherSvc,
	}
}

func parseDateParam(r *http.Request) (time.Time, bool) {
	raw := chi.URLParam(r, "date")
	parsed, err := time.Parse(models.DateFormat, raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// ListOutfits handles GET /v1/outfits - list saved outfits, most recent first.
func (h *OutfitHandler) ListOutfits(w http.ResponseWriter, r *http.Request) {
	outfits, err := h.outfits.ListAll(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to list outfits")
		return
	}

	resp := models.OutfitList{
		Items: make([]models.Outfit, len(outfits)),
		Total: len(outfits),
	}
	for i, o := range outfits {
		resp.Items[i] = toOutfit(o)
	}

	response.JSON(w, r, http.StatusOK, resp)
}

// GetOutfit handles GET /v1/outfits/{date} - get the outfit for a date.
func (h *OutfitHandler) GetOutfit(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(r)
	if !ok {
		response.BadRequest(w, r, "date must be formatted YYYY-MM-DD", nil)
		return
	}

	o, err := h.outfits.FindByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, outfit.ErrOutfitNotFound) {
			response.NotFound(w, r, "no outfit saved for this date")
			return
		}
		response.InternalError(w, r, "failed to get outfit")
		return
	}

	response.JSON(w, r, http.StatusOK, toOutfit(o))
}

// SaveOutfit handles PUT /v1/outfits/{date} - save the outfit for a date,
// replacing any prior outfit on that date and recording wear for every item.
func (h *OutfitHandler) SaveOutfit(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(r)
	if !ok {
		response.BadRequest(w, r, "date must be formatted YYYY-MM-DD", nil)
		return
	}

	var input models.OutfitSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	var snapshot *weather.Snapshot
	if input.City != "" && h.weather != nil {
		// Snapshot capture is best-effort; the save proceeds without it.
		snapshot, _ = h.weather.Current(r.Context(), input.City)
	}

	o, err := h.outfits.Save(r.Context(), outfit.SaveInput{
		Date:    date,
		ItemIDs: input.Items,
		Photo:   input.Photo,
		Notes:   input.Notes,
		Weather: snapshot,
	})
	if err != nil {
		switch {
		case errors.Is(err, outfit.ErrNoItems):
			response.BadRequest(w, r, "outfit must contain at least one item", []models.FieldError{
				{Field: "items", Message: "must not be empty"},
			})
		case errors.Is(err, outfit.ErrDuplicateItems):
			response.BadRequest(w, r, "outfit must not contain duplicates", []models.FieldError{
				{Field: "items", Message: "contains duplicate item ids"},
			})
		default:
			response.InternalError(w, r, "failed to save outfit")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, toOutfit(o))
}

// DeleteOutfit handles DELETE /v1/outfits/{date} - remove the outfit for a date.
func (h *OutfitHandler) DeleteOutfit(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(r)
	if !ok {
		response.BadRequest(w, r, "date must be formatted YYYY-MM-DD", nil)
		return
	}

	if err := h.outfits.DeleteByDate(r.Context(), date); err != nil {
		if errors.Is(err, outfit.ErrOutfitNotFound) {
			response.NotFound(w, r, "no outfit saved for this date")
			return
		}
		response.InternalError(w, r, "failed to delete outfit")
		return
	}

	response.NoContent(w, r)
}

// CheckOutfit handles POST /v1/outfits/check - repeat warning and wear
// analysis for a candidate outfit on a date.
func (h *OutfitHandler) CheckOutfit(w http.ResponseWriter, r *http.Request) {
	var input models.RepeatCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if len(input.Items) == 0 {
		response.BadRequest(w, r, "candidate outfit must contain at least one item", []models.FieldError{
			{Field: "items", Message: "must not be empty"},
		})
		return
	}

	history, err := h.outfits.ListAll(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to list outfits")
		return
	}
	items, err := h.wardrobe.List(r.Context(), wardrobe.FilterOptions{})
	if err != nil {
		response.InternalError(w, r, "failed to list wardrobe items")
		return
	}

	date := input.Date.Time()
	if date.IsZero() {
		date = time.Now()
	}

	analysis := repeat.Analyze(input.Items, date, history, items)

	resp := models.RepeatAnalysis{
		Warning:     toRepeatWarning(analysis.Warning),
		RecentWear:  make([]models.RecentWear, len(analysis.RecentWear)),
		Suggestions: analysis.Suggestions,
	}
	for i, wear := range analysis.RecentWear {
		resp.RecentWear[i] = models.RecentWear{
			ItemID:  wear.ItemID,
			Item:    toClothingItem(wear.Item),
			DaysAgo: wear.DaysAgo,
		}
	}

	response.JSON(w, r, http.StatusOK, resp)
}

func toRepeatWarning(warning repeat.Warning) models.RepeatWarning {
	out := models.RepeatWarning{
		HasWarning:    warning.HasWarning,
		Type:          string(warning.Kind),
		Message:       warning.Message,
		AffectedItems: warning.AffectedItems,
	}
	if warning.HasWarning {
		daysAgo := warning.DaysAgo
		out.DaysAgo = &daysAgo
	}
	return out
}

// SimilarOutfits handles GET /v1/outfits/{date}/similar - outfits similar to
// the one saved on a date.
func (h *OutfitHandler) SimilarOutfits(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(r)
	if !ok {
		response.BadRequest(w, r, "date must be formatted YYYY-MM-DD", nil)
		return
	}

	reference, err := h.outfits.FindByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, outfit.ErrOutfitNotFound) {
			response.NotFound(w, r, "no outfit saved for this date")
			return
		}
		response.InternalError(w, r, "failed to get outfit")
		return
	}

	history, items, ok := h.loadHistory(w, r)
	if !ok {
		return
	}

	matches := repeat.FindSimilar(reference, history, items, defaultSimilarLimit)
	response.JSON(w, r, http.StatusOK, h.toSimilarList(r, matches, items))
}

// SimilarByColors handles POST /v1/outfits/similar/colors - search outfit
// history by color scheme.
func (h *OutfitHandler) SimilarByColors(w http.ResponseWriter, r *http.Request) {
	var input models.SimilarByColorsRequest
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

	history, items, ok := h.loadHistory(w, r)
	if !ok {
		return
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	matches := repeat.FindByColors(input.Colors, history, items, limit)
	response.JSON(w, r, http.StatusOK, h.toSimilarList(r, matches, items))
}

// SimilarByStructure handles POST /v1/outfits/similar/structure - search
// outfit history by category structure.
func (h *OutfitHandler) SimilarByStructure(w http.ResponseWriter, r *http.Request) {
	var input models.SimilarByStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if len(input.Categories) == 0 {
		response.BadRequest(w, r, "at least one category is required", []models.FieldError{
			{Field: "categories", Message: "must not be empty"},
		})
		return
	}

	categories := make([]wardrobe.Category, len(input.Categories))
	for i, raw := range input.Categories {
		category := wardrobe.Category(raw)
		if !category.Valid() {
			response.BadRequest(w, r, "unknown category", []models.FieldError{
				{Field: "categories", Message: "contains an unknown category"},
			})
			return
		}
		categories[i] = category
	}

	history, items, ok := h.loadHistory(w, r)
	if !ok {
		return
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	matches := repeat.FindByStructure(categories, history, items, limit)
	response.JSON(w, r, http.StatusOK, h.toSimilarList(r, matches, items))
}

// RandomOutfit handles POST /v1/outfits/random - draw one random item per
// category from the weather-filtered pools and return the assembled preview.
func (h *OutfitHandler) RandomOutfit(w http.ResponseWriter, r *http.Request) {
	var input models.RandomOutfitRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			response.BadRequest(w, r, "invalid JSON body", nil)
			return
		}
	}

	items, err := h.wardrobe.List(r.Context(), wardrobe.FilterOptions{})
	if err != nil {
		response.InternalError(w, r, "failed to list wardrobe items")
		return
	}

	var snapshot *weather.Snapshot
	if input.City != "" && h.weather != nil {
		// Without weather the pools are category-only filtered.
		snapshot, _ = h.weather.Current(r.Context(), input.City)
	}

	now := time.Now()
	b := builder.New(func(category wardrobe.Category) []*wardrobe.Item {
		return matcher.WeatherAppropriate(items, snapshot, category, now)
	})
	b.Randomize(rand.New(rand.NewSource(now.UnixNano())))

	response.JSON(w, r, http.StatusOK, toOutfitPreview(b.Selection()))
}

func toOutfitPreview(selection builder.Selection) models.OutfitPreview {
	preview := models.OutfitPreview{
		Selection: make(map[string]models.ClothingItem),
		Complete:  selection.Complete(),
	}

	var colors []string
	for _, category := range builder.Sequence {
		item := selection.Get(category)
		if item == nil {
			continue
		}
		preview.Selection[string(category)] = toClothingItem(item)
		colors = append(colors, item.Color)
	}

	if len(colors) > 0 {
		analysis := colormatch.Analyze(colors)
		harmony := models.ColorAnalysis{
			Harmonious: analysis.Harmonious,
			Message:    analysis.Message,
			Score:      analysis.Score,
		}
		if analysis.Suggestion != "" {
			suggestion := analysis.Suggestion
			harmony.Suggestion = &suggestion
		}
		preview.Harmony = &harmony
	}

	return preview
}

func (h *OutfitHandler) loadHistory(w http.ResponseWriter, r *http.Request) ([]*outfit.Outfit, []*wardrobe.Item, bool) {
	history, err := h.outfits.ListAll(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to list outfits")
		return nil, nil, false
	}
	items, err := h.wardrobe.List(r.Context(), wardrobe.FilterOptions{})
	if err != nil {
		response.InternalError(w, r, "failed to list wardrobe items")
		return nil, nil, false
	}
	return history, items, true
}

func (h *OutfitHandler) toSimilarList(r *http.Request, matches []repeat.SimilarOutfit, items []*wardrobe.Item) models.SimilarOutfitList {
	resp := models.SimilarOutfitList{Items: make([]models.SimilarOutfit, len(matches))}
	for i, match := range matches {
		entry := models.SimilarOutfit{
			Outfit: toOutfit(match.Outfit),
			Score:  match.Score,
			Reason: match.Reason,
		}
		for _, id := range match.Outfit.ItemIDs {
			for _, item := range items {
				if item.ID == id {
					entry.Items = append(entry.Items, toClothingItem(item))
					break
				}
			}
		}
		resp.Items[i] = entry
	}
	return resp
}
