package repository

import "context"

// Reward defines the interface for currency ledger persistence.
// Credit and Debit must be single atomic operations: two concurrent debits
// against the same account must never both succeed when the balance only
// covers one of them.
type Reward interface {
	// GetBalance returns the current balance, or 0 if no account exists.
	// Reading never creates an account.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// Credit atomically creates-or-increments the account and returns the new
	// balance. Amount must be positive.
	Credit(ctx context.Context, userID string, amount int64) (int64, error)

	// Debit atomically checks the balance covers amount and decrements it,
	// returning the new balance. Returns domain.ErrInsufficientFunds (and
	// leaves the balance unchanged) when it does not.
	Debit(ctx context.Context, userID string, amount int64) (int64, error)
}
