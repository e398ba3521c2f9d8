package outfit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/getset/getset/internal/weather"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL outfit repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const outfitColumns = `
	id, date, items, photo, notes, weather
`

// ListAll retrieves every outfit, most recent date first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Outfit, error) {
	query := `
		SELECT ` + outfitColumns + `
		FROM outfits
		ORDER BY date DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outfits []*Outfit
	for rows.Next() {
		o, err := scanOutfit(rows)
		if err != nil {
			return nil, err
		}
		outfits = append(outfits, o)
	}

	return outfits, rows.Err()
}

// FindByDate retrieves the outfit for a date.
func (r *PostgresRepository) FindByDate(ctx context.Context, date time.Time) (*Outfit, error) {
	query := `
		SELECT ` + outfitColumns + `
		FROM outfits
		WHERE date = $1
	`

	o, err := scanOutfit(r.pool.QueryRow(ctx, query, NormalizeDate(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOutfitNotFound
		}
		return nil, err
	}

	return o, nil
}

// UpsertByDate stores an outfit, replacing any existing outfit for its date.
func (r *PostgresRepository) UpsertByDate(ctx context.Context, o *Outfit) error {
	var weatherJSON []byte
	if o.Weather != nil {
		var err error
		weatherJSON, err = json.Marshal(o.Weather)
		if err != nil {
			return fmt.Errorf("encoding weather snapshot: %w", err)
		}
	}

	query := `
		INSERT INTO outfits (id, date, items, photo, notes, weather)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date) DO UPDATE SET
			id = EXCLUDED.id,
			items = EXCLUDED.items,
			photo = EXCLUDED.photo,
			notes = EXCLUDED.notes,
			weather = EXCLUDED.weather
	`

	_, err := r.pool.Exec(ctx, query,
		o.ID,
		NormalizeDate(o.Date),
		o.ItemIDs,
		o.Photo,
		o.Notes,
		weatherJSON,
	)
	return err
}

// DeleteByDate removes the outfit for a date.
func (r *PostgresRepository) DeleteByDate(ctx context.Context, date time.Time) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM outfits WHERE date = $1`, NormalizeDate(date))
	return err
}

func scanOutfit(row pgx.Row) (*Outfit, error) {
	var (
		o           Outfit
		weatherJSON []byte
	)

	err := row.Scan(
		&o.ID,
		&o.Date,
		&o.ItemIDs,
		&o.Photo,
		&o.Notes,
		&weatherJSON,
	)
	if err != nil {
		return nil, err
	}

	o.Date = NormalizeDate(o.Date)
	if len(weatherJSON) > 0 {
		var snapshot weather.Snapshot
		if err := json.Unmarshal(weatherJSON, &snapshot); err != nil {
			return nil, fmt.Errorf("decoding weather snapshot: %w", err)
		}
		o.Weather = &snapshot
	}

	return &o, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
