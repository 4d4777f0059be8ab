package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lilyapp/lily/internal/domain"
	"github.com/lilyapp/lily/internal/repository"
)

// AcquisitionRepository implements the pull record repository for PostgreSQL
type AcquisitionRepository struct {
	db *pgxpool.Pool
}

// NewAcquisitionRepository creates a new AcquisitionRepository
func NewAcquisitionRepository(db *pgxpool.Pool) *AcquisitionRepository {
	return &AcquisitionRepository{db: db}
}

// AcquisitionTx implements repository.AcquisitionTx
type AcquisitionTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *AcquisitionRepository) BeginTx(ctx context.Context) (repository.AcquisitionTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &AcquisitionTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *AcquisitionTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *AcquisitionTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func insertAcquisition(ctx context.Context, q querier, userID string, itemID int) (*domain.Acquisition, error) {
	var acq domain.Acquisition
	err := q.QueryRow(ctx, `
		INSERT INTO acquisitions (user_id, item_id)
		VALUES ($1, $2)
		RETURNING acquisition_id, user_id, item_id, created_at`,
		userID, itemID,
	).Scan(&acq.ID, &acq.UserID, &acq.ItemID, &acq.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInsertAcquisitionFailed, err)
	}
	return &acq, nil
}

// InsertAcquisition appends one pull record
func (r *AcquisitionRepository) InsertAcquisition(ctx context.Context, userID string, itemID int) (*domain.Acquisition, error) {
	return insertAcquisition(ctx, r.db, userID, itemID)
}

// InsertAcquisition for Tx
func (t *AcquisitionTx) InsertAcquisition(ctx context.Context, userID string, itemID int) (*domain.Acquisition, error) {
	return insertAcquisition(ctx, t.tx, userID, itemID)
}

// GetInventory returns the user's acquisitions grouped by item,
// most recently acquired first
func (r *AcquisitionRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.item_id, i.name, i.rarity, COALESCE(i.description, ''), i.image_url, i.color1, i.color2,
		       COUNT(*) AS count, MAX(a.created_at) AS last_acquired_at
		FROM acquisitions a
		JOIN items i ON i.item_id = a.item_id
		WHERE a.user_id = $1
		GROUP BY i.item_id
		ORDER BY last_acquired_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var e domain.InventoryEntry
		err := rows.Scan(
			&e.Item.ID, &e.Item.Name, &e.Item.Rarity, &e.Item.Description,
			&e.Item.ImageURL, &e.Item.Color1, &e.Item.Color2,
			&e.Count, &e.LastAcquiredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
	}
	return entries, nil
}

// CountByUserAndItem returns how many times the user acquired an item
func (r *AcquisitionRepository) CountByUserAndItem(ctx context.Context, userID string, itemID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM acquisitions WHERE user_id = $1 AND item_id = $2`,
		userID, itemID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
	}
	return count, nil
}
