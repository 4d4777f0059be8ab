package repository

import (
	"context"

	"github.com/lilyapp/lily/internal/domain"
)

// Item defines the interface for catalog persistence
type Item interface {
	// GetAllItems returns the full catalog in insertion order
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)

	// GetItemByImageURL finds an item by its external image URL.
	// Returns nil without error when no item matches.
	GetItemByImageURL(ctx context.Context, imageURL string) (*domain.Item, error)

	// FindOrCreateByImageURL inserts an item keyed by its external image URL,
	// or returns the existing row when one already exists. Idempotent: two
	// concurrent calls with the same URL resolve to the same row.
	FindOrCreateByImageURL(ctx context.Context, item *domain.Item) (*domain.Item, error)

	InsertItem(ctx context.Context, item *domain.Item) (int, error)
	UpdateItem(ctx context.Context, itemID int, item *domain.Item) error
}
