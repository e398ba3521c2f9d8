package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/api/response"
	"github.com/getset/getset/internal/trip"
)

// TripHandler handles trip planning endpoints.
type TripHandler struct {
	trips *trip.Service
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripSvc *trip.Service) *TripHandler {
	return &TripHandler{trips: tripSvc}
}

// ListTrips handles GET /v1/trips - list trips, soonest start first.
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.trips.List(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to list trips")
		return
	}

	resp := models.TripList{
		Items: make([]models.Trip, len(trips)),
		Total: len(trips),
	}
	for i, t := range trips {
		resp.Items[i] = toTrip(t)
	}

	response.JSON(w, r, http.StatusOK, resp)
}

// CreateTrip handles POST /v1/trips - create a trip with a best-effort
// destination forecast.
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var input models.TripCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	t, err := h.trips.Create(r.Context(), &input)
	if err != nil {
		var validationErr *trip.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(w, r, "invalid trip", validationErr.Errors)
			return
		}
		response.InternalError(w, r, "failed to create trip")
		return
	}

	location := fmt.Sprintf("/v1/trips/%s", t.ID)
	response.Created(w, r, location, toTrip(t))
}

// GetTrip handles GET /v1/trips/{tripId} - get a trip.
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	t, err := h.trips.Get(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			response.NotFound(w, r, "trip not found")
			return
		}
		response.InternalError(w, r, "failed to get trip")
		return
	}

	response.JSON(w, r, http.StatusOK, toTrip(t))
}

// UpdateTrip handles PUT /v1/trips/{tripId} - partially update a trip.
func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	var input models.TripUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	t, err := h.trips.Update(r.Context(), tripID, &input)
	if err != nil {
		var validationErr *trip.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.BadRequest(w, r, "invalid trip", validationErr.Errors)
		case errors.Is(err, trip.ErrTripNotFound):
			response.NotFound(w, r, "trip not found")
		default:
			response.InternalError(w, r, "failed to update trip")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, toTrip(t))
}

// DeleteTrip handles DELETE /v1/trips/{tripId} - remove a trip.
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	if err := h.trips.Delete(r.Context(), tripID); err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			response.NotFound(w, r, "trip not found")
			return
		}
		response.InternalError(w, r, "failed to delete trip")
		return
	}

	response.NoContent(w, r)
}

// AssignOutfit handles PUT /v1/trips/{tripId}/outfits/{date} - record the
// outfit planned for one trip day.
func (h *TripHandler) AssignOutfit(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	date, ok := parseDateParam(r)
	if !ok {
		response.BadRequest(w, r, "invalid date, expected YYYY-MM-DD", nil)
		return
	}

	var input models.TripOutfitAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if input.OutfitID == "" {
		response.BadRequest(w, r, "outfitId is required", nil)
		return
	}

	t, err := h.trips.AssignOutfit(r.Context(), tripID, date, input.OutfitID)
	if err != nil {
		var validationErr *trip.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.BadRequest(w, r, "invalid assignment", validationErr.Errors)
		case errors.Is(err, trip.ErrTripNotFound):
			response.NotFound(w, r, "trip not found")
		default:
			response.InternalError(w, r, "failed to assign outfit")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, toTrip(t))
}

// GeneratePackingList handles POST /v1/trips/{tripId}/packing - regenerate
// the packing list from the trip's stored forecast.
func (h *TripHandler) GeneratePackingList(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	t, err := h.trips.Get(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			response.NotFound(w, r, "trip not found")
			return
		}
		response.InternalError(w, r, "failed to get trip")
		return
	}

	packing := trip.PackingList(t.Weather)
	if packing == nil {
		packing = []string{}
	}
	updated, err := h.trips.Update(r.Context(), tripID, &models.TripUpdateRequest{
		PackingList: packing,
	})
	if err != nil {
		response.InternalError(w, r, "failed to update packing list")
		return
	}

	response.JSON(w, r, http.StatusOK, toTrip(updated))
}
