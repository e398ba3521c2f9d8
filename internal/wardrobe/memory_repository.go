package wardrobe

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// It backs tests and database-less local mode.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Item
}

// NewInMemoryRepository creates a new in-memory wardrobe repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*Item),
	}
}

// List retrieves every clothing item, newest first.
func (r *InMemoryRepository) List(_ context.Context) ([]*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*Item, 0, len(r.items))
	for _, item := range r.items {
		cpy := copyItem(item)
		items = append(items, cpy)
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})

	return items, nil
}

// Get retrieves an item by ID.
func (r *InMemoryRepository) Get(_ context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}

	return copyItem(item), nil
}

// Create stores a new item.
func (r *InMemoryRepository) Create(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = copyItem(item)
	return nil
}

// Update applies a partial update to an existing item.
func (r *InMemoryRepository) Update(_ context.Context, id string, update ItemUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return ErrItemNotFound
	}

	if update.Image != nil {
		item.Image = *update.Image
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
	if update.Color != nil {
		item.Color = *update.Color
	}
	if update.Seasons != nil {
		item.Seasons = append([]Season(nil), update.Seasons...)
	}
	if update.Notes != nil {
		item.Notes = *update.Notes
	}
	if update.WearCount != nil {
		item.WearCount = *update.WearCount
	}
	if update.LastWorn != nil {
		worn := *update.LastWorn
		item.LastWorn = &worn
	}

	return nil
}

// Delete removes an item by ID.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func copyItem(item *Item) *Item {
	cpy := *item
	cpy.Seasons = append([]Season(nil), item.Seasons...)
	if item.LastWorn != nil {
		worn := *item.LastWorn
		cpy.LastWorn = &worn
	}
	return &cpy
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
