package trip

import "context"

// Repository defines storage operations for trips.
type Repository interface {
	// List returns all trips, soonest start date first.
	List(ctx context.Context) ([]*Trip, error)

	// Get returns a trip by ID, or ErrTripNotFound.
	Get(ctx context.Context, id string) (*Trip, error)

	// Create stores a new trip.
	Create(ctx context.Context, trip *Trip) error

	// Update applies a partial update, or returns ErrTripNotFound.
	Update(ctx context.Context, id string, update Update) error

	// Delete removes a trip, or returns ErrTripNotFound.
	Delete(ctx context.Context, id string) error
}
