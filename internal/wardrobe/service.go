package wardrobe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/getset/getset/internal/api/models"
)

// Validation constants.
const (
	MaxColorLength = 60
	MaxNotesLength = 500
)

// Service provides wardrobe operations.
type Service struct {
	repo Repository
}

// NewService creates a new wardrobe service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FilterOptions narrows a wardrobe listing.
type FilterOptions struct {
	Category Category
	Color    string
	Season   Season
	Search   string
}

// List retrieves wardrobe items, optionally filtered.
func (s *Service) List(ctx context.Context, opts FilterOptions) ([]*Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if opts == (FilterOptions{}) {
		return items, nil
	}

	filtered := make([]*Item, 0, len(items))
	for _, item := range items {
		if matchesFilter(item, opts) {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

func matchesFilter(item *Item, opts FilterOptions) bool {
	if opts.Category != "" && item.Category != opts.Category {
		return false
	}
	if opts.Color != "" && !strings.EqualFold(item.Color, opts.Color) {
		return false
	}
	if opts.Season != "" && !item.HasSeason(opts.Season) {
		return false
	}
	if opts.Search != "" {
		query := strings.ToLower(opts.Search)
		if !strings.Contains(strings.ToLower(string(item.Category)), query) &&
			!strings.Contains(strings.ToLower(item.Color), query) &&
			!strings.Contains(strings.ToLower(item.Notes), query) {
			return false
		}
	}
	return true
}

// Get retrieves an item by ID.
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.Get(ctx, id)
}

// Create creates a new clothing item.
func (s *Service) Create(ctx context.Context, input *models.ClothingItemCreateRequest) (*Item, error) {
	if fieldErrors := validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	seasons := make([]Season, len(input.Seasons))
	for i, season := range input.Seasons {
		seasons[i] = Season(season)
	}

	item := &Item{
		ID:        "itm_" + uuid.New().String()[:22],
		Image:     input.Image,
		Category:  Category(input.Category),
		Color:     input.Color,
		Seasons:   seasons,
		Notes:     input.Notes,
		WearCount: 0,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Update applies a partial update to an item.
func (s *Service) Update(ctx context.Context, id string, input *models.ClothingItemUpdateRequest) (*Item, error) {
	if fieldErrors := validateUpdateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	update := ItemUpdate{
		Image: input.Image,
		Color: input.Color,
		Notes: input.Notes,
	}
	if input.Category != nil {
		category := Category(*input.Category)
		update.Category = &category
	}
	if input.Seasons != nil {
		seasons := make([]Season, len(input.Seasons))
		for i, season := range input.Seasons {
			seasons[i] = Season(season)
		}
		update.Seasons = seasons
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// RecordWear increments the wear count and sets the last-worn date for every
// given item. Each item is touched exactly once per call. The last-worn date
// is set to the wear date even if a later wear is already recorded; retroactive
// logging intentionally wins.
func (s *Service) RecordWear(ctx context.Context, itemIDs []string, wornOn time.Time) error {
	for _, id := range itemIDs {
		item, err := s.repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				// Dangling reference; skip rather than fail the save.
				continue
			}
			return err
		}

		count := item.WearCount + 1
		worn := wornOn
		update := ItemUpdate{
			WearCount: &count,
			LastWorn:  &worn,
		}
		if err := s.repo.Update(ctx, id, update); err != nil {
			return fmt.Errorf("recording wear for %s: %w", id, err)
		}
	}
	return nil
}

// Resolve maps item IDs to items, silently dropping IDs that no longer exist.
func (s *Service) Resolve(ctx context.Context, itemIDs []string) ([]*Item, error) {
	items := make([]*Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := s.repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// validateCreateInput validates the create item input.
func validateCreateInput(input *models.ClothingItemCreateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Category == "" {
		errs = append(errs, models.FieldError{Field: "category", Message: "is required"})
	} else if !Category(input.Category).Valid() {
		errs = append(errs, models.FieldError{Field: "category", Message: "is not a known category"})
	}

	if input.Color == "" {
		errs = append(errs, models.FieldError{Field: "color", Message: "is required"})
	} else if len(input.Color) > MaxColorLength {
		errs = append(errs, models.FieldError{Field: "color", Message: "must be at most 60 characters"})
	}

	errs = append(errs, validateSeasons(input.Seasons, true)...)

	if len(input.Notes) > MaxNotesLength {
		errs = append(errs, models.FieldError{Field: "notes", Message: "must be at most 500 characters"})
	}

	return errs
}

// validateUpdateInput validates the update item input.
func validateUpdateInput(input *models.ClothingItemUpdateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Category != nil && !Category(*input.Category).Valid() {
		errs = append(errs, models.FieldError{Field: "category", Message: "is not a known category"})
	}

	if input.Color != nil {
		if *input.Color == "" {
			errs = append(errs, models.FieldError{Field: "color", Message: "must not be empty"})
		} else if len(*input.Color) > MaxColorLength {
			errs = append(errs, models.FieldError{Field: "color", Message: "must be at most 60 characters"})
		}
	}

	if input.Seasons != nil {
		errs = append(errs, validateSeasons(input.Seasons, true)...)
	}

	if input.Notes != nil && len(*input.Notes) > MaxNotesLength {
		errs = append(errs, models.FieldError{Field: "notes", Message: "must be at most 500 characters"})
	}

	return errs
}

func validateSeasons(seasons []string, required bool) []models.FieldError {
	var errs []models.FieldError

	if len(seasons) == 0 {
		if required {
			errs = append(errs, models.FieldError{Field: "seasons", Message: "must not be empty"})
		}
		return errs
	}

	for _, season := range seasons {
		if !Season(season).Valid() {
			errs = append(errs, models.FieldError{Field: "seasons", Message: "contains an unknown season"})
			break
		}
	}

	return errs
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d errors", len(e.Errors))
}
