package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lilyapp/lily/internal/domain"
)

// ItemRepository implements the catalog repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `item_id, name, rarity, description, image_url, color1, color2`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	var description *string
	err := row.Scan(&item.ID, &item.Name, &item.Rarity, &description, &item.ImageURL, &item.Color1, &item.Color2)
	if err != nil {
		return nil, err
	}
	if description != nil {
		item.Description = *description
	}
	return &item, nil
}

// GetAllItems returns the full catalog in insertion order
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetAllItemsFailed, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgGetAllItemsFailed, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetAllItemsFailed, err)
	}
	return items, nil
}

// GetItemByID retrieves one item, or domain.ErrItemNotFound
func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE item_id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgGetItemFailed, err)
	}
	return item, nil
}

// GetItemByImageURL finds an item by its external image URL.
// Returns nil without error when no item matches.
func (r *ItemRepository) GetItemByImageURL(ctx context.Context, imageURL string) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE image_url = $1`, imageURL))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgGetItemFailed, err)
	}
	return item, nil
}

// FindOrCreateByImageURL inserts an item keyed by its external image URL, or
// returns the existing row. The no-op DO UPDATE makes RETURNING yield the row
// in both cases, so concurrent calls with the same URL converge on one row.
func (r *ItemRepository) FindOrCreateByImageURL(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if item.ImageURL == nil || *item.ImageURL == "" {
		return nil, fmt.Errorf("%w: image URL is required", domain.ErrInvalidArgument)
	}

	saved, err := scanItem(r.db.QueryRow(ctx, `
		INSERT INTO items (name, rarity, description, image_url, color1, color2)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
		ON CONFLICT (image_url) DO UPDATE SET image_url = EXCLUDED.image_url
		RETURNING `+itemColumns,
		item.Name, item.Rarity, item.Description, item.ImageURL, item.Color1, item.Color2,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUpsertItemFailed, err)
	}
	return saved, nil
}

// InsertItem adds a new catalog item and returns its ID
func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO items (name, rarity, description, image_url, color1, color2)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
		RETURNING item_id`,
		item.Name, item.Rarity, item.Description, item.ImageURL, item.Color1, item.Color2,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgInsertItemFailed, err)
	}
	return id, nil
}

// UpdateItem replaces an item's editable fields
func (r *ItemRepository) UpdateItem(ctx context.Context, itemID int, item *domain.Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items
		SET name = $2, rarity = $3, description = NULLIF($4, ''), image_url = $5, color1 = $6, color2 = $7
		WHERE item_id = $1`,
		itemID, item.Name, item.Rarity, item.Description, item.ImageURL, item.Color1, item.Color2,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpdateItemFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}
