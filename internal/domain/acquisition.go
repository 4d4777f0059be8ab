package domain

import "time"

// Acquisition is one immutable record of a user obtaining an item through a
// gacha pull. Rows are append-only: they double as the user's inventory
// (grouped by item) and as an audit trail for currency spends.
type Acquisition struct {
	ID        int64     `json:"acquisition_id" db:"acquisition_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ItemID    int       `json:"item_id" db:"item_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// InventoryEntry is one line of a user's inventory: an item plus how many
// times it has been acquired.
type InventoryEntry struct {
	Item           Item      `json:"item"`
	Count          int       `json:"count"`
	LastAcquiredAt time.Time `json:"last_acquired_at"`
}
