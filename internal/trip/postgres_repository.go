package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL trip repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const tripColumns = `
	id, destination, start_date, end_date, trip_type,
	outfits, weather, packing_list, notes, created_at
`

// List retrieves all trips, soonest start date first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY start_date ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}

// Get retrieves a trip by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1
	`

	t, err := scanTrip(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	return t, nil
}

// Create stores a new trip.
func (r *PostgresRepository) Create(ctx context.Context, trip *Trip) error {
	outfitsJSON, weatherJSON, err := encodeTrip(trip)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO trips (
			id, destination, start_date, end_date, trip_type,
			outfits, weather, packing_list, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.pool.Exec(ctx, query,
		trip.ID,
		trip.Destination,
		trip.StartDate,
		trip.EndDate,
		trip.Type,
		outfitsJSON,
		weatherJSON,
		trip.PackingList,
		trip.Notes,
		trip.CreatedAt,
	)
	return err
}

// Update applies a partial update to a trip.
func (r *PostgresRepository) Update(ctx context.Context, id string, update Update) error {
	var (
		sets []string
		args []any
	)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Destination != nil {
		add("destination", *update.Destination)
	}
	if update.StartDate != nil {
		add("start_date", *update.StartDate)
	}
	if update.EndDate != nil {
		add("end_date", *update.EndDate)
	}
	if update.Type != nil {
		add("trip_type", *update.Type)
	}
	if update.Outfits != nil {
		outfitsJSON, err := json.Marshal(update.Outfits)
		if err != nil {
			return fmt.Errorf("encoding outfit assignments: %w", err)
		}
		add("outfits", outfitsJSON)
	}
	if update.PackingList != nil {
		add("packing_list", update.PackingList)
	}
	if update.Notes != nil {
		add("notes", *update.Notes)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE trips SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrTripNotFound
	}

	return nil
}

// Delete removes a trip.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrTripNotFound
	}

	return nil
}

func encodeTrip(trip *Trip) (outfitsJSON, weatherJSON []byte, err error) {
	outfits := trip.Outfits
	if outfits == nil {
		outfits = map[string]string{}
	}
	outfitsJSON, err = json.Marshal(outfits)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding outfit assignments: %w", err)
	}

	if trip.Weather != nil {
		weatherJSON, err = json.Marshal(trip.Weather)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding weather snapshots: %w", err)
		}
	}

	return outfitsJSON, weatherJSON, nil
}

func scanTrip(row pgx.Row) (*Trip, error) {
	var (
		t           Trip
		outfitsJSON []byte
		weatherJSON []byte
	)

	err := row.Scan(
		&t.ID,
		&t.Destination,
		&t.StartDate,
		&t.EndDate,
		&t.Type,
		&outfitsJSON,
		&weatherJSON,
		&t.PackingList,
		&t.Notes,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(outfitsJSON) > 0 {
		if err := json.Unmarshal(outfitsJSON, &t.Outfits); err != nil {
			return nil, fmt.Errorf("decoding outfit assignments: %w", err)
		}
	}
	if len(weatherJSON) > 0 {
		if err := json.Unmarshal(weatherJSON, &t.Weather); err != nil {
			return nil, fmt.Errorf("decoding weather snapshots: %w", err)
		}
	}

	return &t, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
