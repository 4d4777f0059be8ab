package repository

import (
	"context"

	"github.com/lilyapp/lily/internal/domain"
)

// Acquisition defines the interface for pull record persistence.
// Records are append-only; there is no update or delete.
type Acquisition interface {
	// InsertAcquisition appends one pull record
	InsertAcquisition(ctx context.Context, userID string, itemID int) (*domain.Acquisition, error)

	// GetInventory returns the user's acquisitions grouped by item,
	// most recently acquired first
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)

	// CountByUserAndItem returns how many times the user acquired an item
	CountByUserAndItem(ctx context.Context, userID string, itemID int) (int, error)

	BeginTx(ctx context.Context) (AcquisitionTx, error)
}

// AcquisitionTx groups a pull record insert with other statements that must
// commit atomically with it
type AcquisitionTx interface {
	Tx
	InsertAcquisition(ctx context.Context, userID string, itemID int) (*domain.Acquisition, error)
}
