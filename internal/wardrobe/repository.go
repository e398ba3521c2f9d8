package wardrobe

import "context"

// Repository defines the interface for wardrobe persistence.
type Repository interface {
	// List retrieves every clothing item, newest first.
	List(ctx context.Context) ([]*Item, error)

	// Get retrieves an item by ID.
	// Returns ErrItemNotFound if the item doesn't exist.
	Get(ctx context.Context, id string) (*Item, error)

	// Create stores a new item.
	Create(ctx context.Context, item *Item) error

	// Update applies a partial update to an existing item.
	Update(ctx context.Context, id string, update ItemUpdate) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id string) error
}
