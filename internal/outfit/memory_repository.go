package outfit

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository is an in-memory implementation of Repository.
// It backs tests and database-less local mode.
type InMemoryRepository struct {
	mu      sync.RWMutex
	outfits map[string]*Outfit // keyed by date (YYYY-MM-DD)
}

// NewInMemoryRepository creates a new in-memory outfit repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		outfits: make(map[string]*Outfit),
	}
}

func dateKey(date time.Time) string {
	return NormalizeDate(date).Format("2006-01-02")
}

// ListAll retrieves every outfit, most recent date first.
func (r *InMemoryRepository) ListAll(_ context.Context) ([]*Outfit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	outfits := make([]*Outfit, 0, len(r.outfits))
	for _, o := range r.outfits {
		outfits = append(outfits, copyOutfit(o))
	}

	sort.Slice(outfits, func(i, j int) bool {
		return outfits[i].Date.After(outfits[j].Date)
	})

	return outfits, nil
}

// FindByDate retrieves the outfit for a date.
func (r *InMemoryRepository) FindByDate(_ context.Context, date time.Time) (*Outfit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.outfits[dateKey(date)]
	if !ok {
		return nil, ErrOutfitNotFound
	}

	return copyOutfit(o), nil
}

// UpsertByDate stores an outfit, replacing any existing outfit for its date.
func (r *InMemoryRepository) UpsertByDate(_ context.Context, o *Outfit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := copyOutfit(o)
	cpy.Date = NormalizeDate(o.Date)
	r.outfits[dateKey(o.Date)] = cpy
	return nil
}

// DeleteByDate removes the outfit for a date.
func (r *InMemoryRepository) DeleteByDate(_ context.Context, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.outfits, dateKey(date))
	return nil
}

func copyOutfit(o *Outfit) *Outfit {
	cpy := *o
	cpy.ItemIDs = append([]string(nil), o.ItemIDs...)
	if o.Photo != nil {
		photo := *o.Photo
		cpy.Photo = &photo
	}
	if o.Weather != nil {
		snapshot := *o.Weather
		cpy.Weather = &snapshot
	}
	return &cpy
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
