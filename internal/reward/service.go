package reward

import (
	"context"
	"fmt"

	"github.com/lilyapp/lily/internal/domain"
	"github.com/lilyapp/lily/internal/logger"
	"github.com/lilyapp/lily/internal/metrics"
	"github.com/lilyapp/lily/internal/repository"
)

// Service defines the interface for currency ledger operations
type Service interface {
	// GetBalance returns the user's balance; 0 when no account exists
	GetBalance(ctx context.Context, userID string) (int64, error)

	// Credit adds amount to the user's account, creating it when missing
	Credit(ctx context.Context, userID string, amount int64) (int64, error)

	// Debit removes amount from the user's account, failing with
	// domain.ErrInsufficientFunds when the balance does not cover it
	Debit(ctx context.Context, userID string, amount int64) (int64, error)

	// AwardForTaskCompletion grants the configured reward for a task kind
	// and returns the new balance
	AwardForTaskCompletion(ctx context.Context, userID string, kind domain.TaskKind) (int64, error)
}

type service struct {
	repo    repository.Reward
	rewards map[domain.TaskKind]int64
}

// NewService creates a new ledger service. The rewards table maps task kinds
// to fixed award amounts and is the single source of truth for them.
func NewService(repo repository.Reward, rewards map[domain.TaskKind]int64) Service {
	return &service{
		repo:    repo,
		rewards: rewards,
	}
}

func (s *service) GetBalance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: user ID is required", domain.ErrInvalidArgument)
	}
	return s.repo.GetBalance(ctx, userID)
}

func (s *service) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: user ID is required", domain.ErrInvalidArgument)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: credit amount must be positive, got %d", domain.ErrInvalidArgument, amount)
	}

	newBalance, err := s.repo.Credit(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextCreditFailed, err)
	}
	metrics.CurrencyCredited.Add(float64(amount))
	return newBalance, nil
}

func (s *service) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: user ID is required", domain.ErrInvalidArgument)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: debit amount must be positive, got %d", domain.ErrInvalidArgument, amount)
	}

	newBalance, err := s.repo.Debit(ctx, userID, amount)
	if err != nil {
		return 0, err
	}
	metrics.CurrencyDebited.Add(float64(amount))
	return newBalance, nil
}

func (s *service) AwardForTaskCompletion(ctx context.Context, userID string, kind domain.TaskKind) (int64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAwardCalled, "user_id", userID, "task_kind", kind)

	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaskKind, kind)
	}

	amount, ok := s.rewards[kind]
	if !ok {
		return 0, fmt.Errorf("%w: no reward configured for %q", domain.ErrInvalidTaskKind, kind)
	}

	newBalance, err := s.Credit(ctx, userID, amount)
	if err != nil {
		return 0, err
	}

	metrics.TaskRewardsTotal.WithLabelValues(string(kind)).Inc()
	log.Info(LogMsgTaskRewardGranted, "user_id", userID, "task_kind", kind, "amount", amount, "new_balance", newBalance)
	return newBalance, nil
}
