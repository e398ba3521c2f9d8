package wardrobe

import (
	"context"
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

// NewPostgresRepository creates a new PostgreSQL wardrobe repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const itemColumns = `
	id, image, category, color, seasons, notes,
	wear_count, last_worn, created_at
`

// List retrieves every clothing item, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM clothing_items
		ORDER BY created_at DESC, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Get retrieves an item by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM clothing_items
		WHERE id = $1
	`

	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return item, nil
}

// Create stores a new item.
func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO clothing_items (
			id, image, category, color, seasons, notes,
			wear_count, last_worn, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Image,
		string(item.Category),
		item.Color,
		seasonsToStrings(item.Seasons),
		item.Notes,
		item.WearCount,
		item.LastWorn,
		item.CreatedAt,
	)
	return err
}

// Update applies a partial update to an existing item.
func (r *PostgresRepository) Update(ctx context.Context, id string, update ItemUpdate) error {
	sets := make([]string, 0, 7)
	args := make([]interface{}, 0, 8)

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Image != nil {
		add("image", *update.Image)
	}
	if update.Category != nil {
		add("category", string(*update.Category))
	}
	if update.Color != nil {
		add("color", *update.Color)
	}
	if update.Seasons != nil {
		add("seasons", seasonsToStrings(update.Seasons))
	}
	if update.Notes != nil {
		add("notes", *update.Notes)
	}
	if update.WearCount != nil {
		add("wear_count", *update.WearCount)
	}
	if update.LastWorn != nil {
		add("last_worn", *update.LastWorn)
	}

	if len(sets) == 0 {
		// Nothing to change; still verify the row exists.
		_, err := r.Get(ctx, id)
		return err
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE clothing_items SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Delete removes an item by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM clothing_items WHERE id = $1`, id)
	return err
}

func seasonsToStrings(seasons []Season) []string {
	out := make([]string, len(seasons))
	for i, s := range seasons {
		out[i] = string(s)
	}
	return out
}

func scanItem(row pgx.Row) (*Item, error) {
	var (
		item     Item
		category string
		seasons  []string
	)

	err := row.Scan(
		&item.ID,
		&item.Image,
		&category,
		&item.Color,
		&seasons,
		&item.Notes,
		&item.WearCount,
		&item.LastWorn,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Category = Category(category)
	item.Seasons = make([]Season, len(seasons))
	for i, s := range seasons {
		item.Seasons[i] = Season(s)
	}

	return &item, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
