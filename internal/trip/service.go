package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/suggest"
	"github.com/getset/getset/internal/weather"
)

// Validation constants.
const (
	MaxDestinationLength = 120
	MaxNotesLength       = 500
)

// forecastDays caps how far ahead a destination forecast is requested.
const forecastDays = 7

// Service provides trip planning operations.
type Service struct {
	repo    Repository
	weather *weather.Service
	logger  zerolog.Logger
}

// NewService creates a new trip service. The weather service may be nil;
// trips are then created without forecasts.
func NewService(repo Repository, weatherSvc *weather.Service, logger zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		weather: weatherSvc,
		logger:  logger.With().Str("component", "trip").Logger(),
	}
}

// List retrieves all trips.
func (s *Service) List(ctx context.Context) ([]*Trip, error) {
	return s.repo.List(ctx)
}

// Get retrieves a trip by ID.
func (s *Service) Get(ctx context.Context, id string) (*Trip, error) {
	return s.repo.Get(ctx, id)
}

// Create creates a new trip. A destination forecast is fetched best-effort
// and a packing list derived from it; forecast failure never fails the
// creation, it just leaves the weather empty.
func (s *Service) Create(ctx context.Context, input *models.TripCreateRequest) (*Trip, error) {
	if fieldErrors := validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	trip := &Trip{
		ID:          "trp_" + uuid.New().String()[:22],
		Destination: input.Destination,
		StartDate:   input.StartDate.Time(),
		EndDate:     input.EndDate.Time(),
		Type:        Type(input.Type),
		Outfits:     map[string]string{},
		PackingList: input.PackingList,
		Notes:       input.Notes,
		CreatedAt:   time.Now(),
	}

	trip.Weather = s.fetchForecast(ctx, trip)
	if len(trip.PackingList) == 0 {
		trip.PackingList = PackingList(trip.Weather)
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// fetchForecast pulls a forecast covering the trip, capped at the provider's
// horizon. Returns nil when no weather service is configured or the fetch
// fails.
func (s *Service) fetchForecast(ctx context.Context, trip *Trip) []*weather.Snapshot {
	if s.weather == nil {
		return nil
	}

	days := trip.Duration()
	if days > forecastDays {
		days = forecastDays
	}

	snapshots, err := s.weather.Forecast(ctx, trip.Destination, days)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("destination", trip.Destination).
			Msg("forecast unavailable, creating trip without weather")
		return nil
	}

	result := make([]*weather.Snapshot, len(snapshots))
	for i := range snapshots {
		result[i] = &snapshots[i]
	}
	return result
}

// Update applies a partial update to a trip. The resulting date range must
// still satisfy start <= end.
func (s *Service) Update(ctx context.Context, id string, input *models.TripUpdateRequest) (*Trip, error) {
	if fieldErrors := validateUpdateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	update := Update{
		Destination: input.Destination,
		Outfits:     input.Outfits,
		PackingList: input.PackingList,
		Notes:       input.Notes,
	}
	if input.StartDate != nil {
		start := input.StartDate.Time()
		update.StartDate = &start
	}
	if input.EndDate != nil {
		end := input.EndDate.Time()
		update.EndDate = &end
	}
	if input.Type != nil {
		tripType := Type(*input.Type)
		update.Type = &tripType
	}

	start := existing.StartDate
	if update.StartDate != nil {
		start = *update.StartDate
	}
	end := existing.EndDate
	if update.EndDate != nil {
		end = *update.EndDate
	}
	if start.After(end) {
		return nil, &ValidationError{Errors: []models.FieldError{
			{Field: "endDate", Message: "must not be before startDate"},
		}}
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

// Delete removes a trip.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AssignOutfit records an outfit for one trip day. The date must fall within
// the trip's range.
func (s *Service) AssignOutfit(ctx context.Context, id string, date time.Time, outfitID string) (*Trip, error) {
	trip, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	day := date.Truncate(24 * time.Hour)
	if day.Before(trip.StartDate.Truncate(24*time.Hour)) || day.After(trip.EndDate.Truncate(24*time.Hour)) {
		return nil, &ValidationError{Errors: []models.FieldError{
			{Field: "date", Message: "falls outside the trip's date range"},
		}}
	}

	outfits := make(map[string]string, len(trip.Outfits)+1)
	for k, v := range trip.Outfits {
		outfits[k] = v
	}
	outfits[day.Format(models.DateFormat)] = outfitID

	if err := s.repo.Update(ctx, id, Update{Outfits: outfits}); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

// PackingList derives a deduplicated packing list from forecast snapshots,
// one entry per distinct piece of dressing advice across the trip's days.
func PackingList(snapshots []*weather.Snapshot) []string {
	seen := make(map[string]bool)
	var packing []string
	for _, snapshot := range snapshots {
		for _, suggestion := range suggest.ForWeather(snapshot) {
			if seen[suggestion.Suggestion] {
				continue
			}
			seen[suggestion.Suggestion] = true
			packing = append(packing, suggestion.Suggestion)
		}
	}
	return packing
}

func validateCreateInput(input *models.TripCreateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Destination == "" {
		errs = append(errs, models.FieldError{Field: "destination", Message: "is required"})
	} else if len(input.Destination) > MaxDestinationLength {
		errs = append(errs, models.FieldError{Field: "destination", Message: "must be at most 120 characters"})
	}

	if input.StartDate.Time().IsZero() {
		errs = append(errs, models.FieldError{Field: "startDate", Message: "is required"})
	}
	if input.EndDate.Time().IsZero() {
		errs = append(errs, models.FieldError{Field: "endDate", Message: "is required"})
	}
	if !input.StartDate.Time().IsZero() && !input.EndDate.Time().IsZero() &&
		input.StartDate.Time().After(input.EndDate.Time()) {
		errs = append(errs, models.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if input.Type == "" {
		errs = append(errs, models.FieldError{Field: "type", Message: "is required"})
	} else if !Type(input.Type).Valid() {
		errs = append(errs, models.FieldError{Field: "type", Message: "is not a known trip type"})
	}

	if len(input.Notes) > MaxNotesLength {
		errs = append(errs, models.FieldError{Field: "notes", Message: "must be at most 500 characters"})
	}

	return errs
}

func validateUpdateInput(input *models.TripUpdateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Destination != nil {
		if *input.Destination == "" {
			errs = append(errs, models.FieldError{Field: "destination", Message: "must not be empty"})
		} else if len(*input.Destination) > MaxDestinationLength {
			errs = append(errs, models.FieldError{Field: "destination", Message: "must be at most 120 characters"})
		}
	}

	if input.Type != nil && !Type(*input.Type).Valid() {
		errs = append(errs, models.FieldError{Field: "type", Message: "is not a known trip type"})
	}

	if input.Notes != nil && len(*input.Notes) > MaxNotesLength {
		errs = append(errs, models.FieldError{Field: "notes", Message: "must be at most 500 characters"})
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
