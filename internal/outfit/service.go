package outfit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/getset/getset/internal/wardrobe"
	"github.com/getset/getset/internal/weather"
)

// Service errors.
var (
	ErrDuplicateItems = errors.New("outfit contains duplicate items")
	ErrNoItems        = errors.New("outfit contains no items")
)

// Service provides outfit operations.
type Service struct {
	repo     Repository
	wardrobe *wardrobe.Service
	logger   zerolog.Logger
}

// NewService creates a new outfit service.
func NewService(repo Repository, wardrobeService *wardrobe.Service, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		wardrobe: wardrobeService,
		logger:   logger,
	}
}

// ListAll retrieves every outfit, most recent date first.
func (s *Service) ListAll(ctx context.Context) ([]*Outfit, error) {
	return s.repo.ListAll(ctx)
}

// FindByDate retrieves the outfit for a date.
func (s *Service) FindByDate(ctx context.Context, date time.Time) (*Outfit, error) {
	return s.repo.FindByDate(ctx, date)
}

// SaveInput holds everything needed to save an outfit for a date.
type SaveInput struct {
	Date    time.Time
	ItemIDs []string
	Photo   *string
	Notes   string
	Weather *weather.Snapshot
}

// Save stores the outfit for the given date, replacing any outfit already
// saved for that date, and records a wear for every included item: wear count
// +1 and last-worn set to the outfit date, exactly once per item per save.
func (s *Service) Save(ctx context.Context, input SaveInput) (*Outfit, error) {
	if len(input.ItemIDs) == 0 {
		return nil, ErrNoItems
	}

	seen := make(map[string]bool, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		if seen[id] {
			return nil, ErrDuplicateItems
		}
		seen[id] = true
	}

	o := &Outfit{
		ID:      "oft_" + uuid.New().String()[:22],
		Date:    NormalizeDate(input.Date),
		ItemIDs: append([]string(nil), input.ItemIDs...),
		Photo:   input.Photo,
		Notes:   input.Notes,
		Weather: input.Weather,
	}

	if err := s.repo.UpsertByDate(ctx, o); err != nil {
		return nil, fmt.Errorf("saving outfit: %w", err)
	}

	if err := s.wardrobe.RecordWear(ctx, o.ItemIDs, o.Date); err != nil {
		// The outfit itself is stored; wear bookkeeping is best-effort.
		s.logger.Error().Err(err).
			Str("outfit_id", o.ID).
			Time("date", o.Date).
			Msg("failed to record wear for saved outfit")
	}

	return o, nil
}

// DeleteByDate removes the outfit for a date.
func (s *Service) DeleteByDate(ctx context.Context, date time.Time) error {
	if _, err := s.repo.FindByDate(ctx, date); err != nil {
		return err
	}
	return s.repo.DeleteByDate(ctx, date)
}

// ResolveItems maps an outfit's item IDs to wardrobe items, silently dropping
// IDs that no longer resolve.
func (s *Service) ResolveItems(ctx context.Context, o *Outfit) ([]*wardrobe.Item, error) {
	return s.wardrobe.Resolve(ctx, o.ItemIDs)
}
