package trip

import (
	"context"
	"sort"
	"sync"

	"github.com/getset/getset/internal/weather"
)

// InMemoryRepository is an in-memory implementation of Repository.
// It backs tests and database-less local mode.
type InMemoryRepository struct {
	mu    sync.RWMutex
	trips map[string]*Trip
}

// NewInMemoryRepository creates a new in-memory trip repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		trips: make(map[string]*Trip),
	}
}

// List retrieves all trips, soonest start date first.
func (r *InMemoryRepository) List(_ context.Context) ([]*Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trips := make([]*Trip, 0, len(r.trips))
	for _, t := range r.trips {
		trips = append(trips, copyTrip(t))
	}

	sort.Slice(trips, func(i, j int) bool {
		return trips[i].StartDate.Before(trips[j].StartDate)
	})

	return trips, nil
}

// Get retrieves a trip by ID.
func (r *InMemoryRepository) Get(_ context.Context, id string) (*Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trips[id]
	if !ok {
		return nil, ErrTripNotFound
	}

	return copyTrip(t), nil
}

// Create stores a new trip.
func (r *InMemoryRepository) Create(_ context.Context, trip *Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trips[trip.ID] = copyTrip(trip)
	return nil
}

// Update applies a partial update to a trip.
func (r *InMemoryRepository) Update(_ context.Context, id string, update Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trips[id]
	if !ok {
		return ErrTripNotFound
	}

	if update.Destination != nil {
		t.Destination = *update.Destination
	}
	if update.StartDate != nil {
		t.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		t.EndDate = *update.EndDate
	}
	if update.Type != nil {
		t.Type = *update.Type
	}
	if update.Outfits != nil {
		t.Outfits = make(map[string]string, len(update.Outfits))
		for day, outfitID := range update.Outfits {
			t.Outfits[day] = outfitID
		}
	}
	if update.PackingList != nil {
		t.PackingList = append([]string(nil), update.PackingList...)
	}
	if update.Notes != nil {
		t.Notes = *update.Notes
	}

	return nil
}

// Delete removes a trip.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return ErrTripNotFound
	}

	delete(r.trips, id)
	return nil
}

func copyTrip(t *Trip) *Trip {
	cpy := *t
	if t.Outfits != nil {
		cpy.Outfits = make(map[string]string, len(t.Outfits))
		for day, outfitID := range t.Outfits {
			cpy.Outfits[day] = outfitID
		}
	}
	cpy.PackingList = append([]string(nil), t.PackingList...)
	if t.Weather != nil {
		cpy.Weather = make([]*weather.Snapshot, len(t.Weather))
		for i, s := range t.Weather {
			snapshot := *s
			cpy.Weather[i] = &snapshot
		}
	}
	return &cpy
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
