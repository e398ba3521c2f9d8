package outfit

import (
	"context"
	"time"
)

// Repository defines the interface for outfit persistence.
type Repository interface {
	// ListAll retrieves every outfit, most recent date first.
	ListAll(ctx context.Context) ([]*Outfit, error)

	// FindByDate retrieves the outfit for a date.
	// Returns ErrOutfitNotFound if no outfit exists for that date.
	FindByDate(ctx context.Context, date time.Time) (*Outfit, error)

	// UpsertByDate stores an outfit, replacing any existing outfit that
	// shares its date. The write is all-or-nothing.
	UpsertByDate(ctx context.Context, o *Outfit) error

	// DeleteByDate removes the outfit for a date.
	DeleteByDate(ctx context.Context, date time.Time) error
}
