package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lilyapp/lily/internal/domain"
)

// RewardRepository implements the currency ledger for PostgreSQL
type RewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{db: db}
}

// GetBalance returns the user's balance, or 0 if no account exists.
// Reading never creates an account.
func (r *RewardRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	var amount int64
	err := r.db.QueryRow(ctx,
		`SELECT amount FROM currency_accounts WHERE user_id = $1`,
		userID,
	).Scan(&amount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgGetBalanceFailed, err)
	}
	return amount, nil
}

// Credit atomically creates-or-increments the account.
// The upsert makes the create-vs-increment decision inside one statement, so
// concurrent first credits for the same user cannot race.
func (r *RewardRepository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: credit amount must be positive, got %d", domain.ErrInvalidArgument, amount)
	}

	var newBalance int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO currency_accounts (user_id, amount)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET amount = currency_accounts.amount + EXCLUDED.amount,
		    updated_at = NOW()
		RETURNING amount`,
		userID, amount,
	).Scan(&newBalance)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgCreditFailed, err)
	}
	return newBalance, nil
}

// Debit atomically checks and decrements the balance. The balance guard lives
// in the WHERE clause: when two debits race, the row lock forces the second to
// re-evaluate the condition against the committed balance, so at most one of
// two overdrawing debits succeeds.
func (r *RewardRepository) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: debit amount must be positive, got %d", domain.ErrInvalidArgument, amount)
	}

	var newBalance int64
	err := r.db.QueryRow(ctx, `
		UPDATE currency_accounts
		SET amount = amount - $2, updated_at = NOW()
		WHERE user_id = $1 AND amount >= $2
		RETURNING amount`,
		userID, amount,
	).Scan(&newBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either no account or balance below amount; both are a shortfall
			return 0, fmt.Errorf("%w: need %d", domain.ErrInsufficientFunds, amount)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgDebitFailed, err)
	}
	return newBalance, nil
}
