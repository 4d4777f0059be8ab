package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so shared query
// helpers work inside and outside transactions
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	ErrMsgGetBalanceFailed        = "failed to get balance"
	ErrMsgCreditFailed            = "failed to credit account"
	ErrMsgDebitFailed             = "failed to debit account"
	ErrMsgGetAllItemsFailed       = "failed to query items"
	ErrMsgGetItemFailed           = "failed to get item"
	ErrMsgInsertItemFailed        = "failed to insert item"
	ErrMsgUpdateItemFailed        = "failed to update item"
	ErrMsgUpsertItemFailed        = "failed to upsert item"
	ErrMsgInsertAcquisitionFailed = "failed to insert acquisition"
	ErrMsgGetInventoryFailed      = "failed to get inventory"
)
