package reward

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/lilyapp/lily/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

// memoryLedger is an in-memory repository.Reward with the same atomicity
// guarantees the SQL implementation provides, for concurrency tests.
type memoryLedger struct {
	mu       sync.Mutex
	balances map[string]int64
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{balances: make(map[string]int64)}
}

func (l *memoryLedger) GetBalance(_ context.Context, userID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[userID], nil
}

func (l *memoryLedger) Credit(_ context.Context, userID string, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] += amount
	return l.balances[userID], nil
}

func (l *memoryLedger) Debit(_ context.Context, userID string, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[userID] < amount {
		return 0, fmt.Errorf("%w: need %d", domain.ErrInsufficientFunds, amount)
	}
	l.balances[userID] -= amount
	return l.balances[userID], nil
}
