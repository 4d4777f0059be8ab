package reward

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilyapp/lily/internal/domain"
)

const testUserID = "7f9c60f4-9f07-44d8-a1f3-0a2d5e3b8c11"

var testRewards = map[domain.TaskKind]int64{
	domain.TaskKindOrdinary:   100,
	domain.TaskKindDailyQuest: 300,
	domain.TaskKindTimer:      200,
}

func TestGetBalance(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testRewards)

	repo.On("GetBalance", context.Background(), testUserID).Return(int64(250), nil)

	balance, err := svc.GetBalance(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), balance)
	repo.AssertExpectations(t)
}

func TestGetBalanceRequiresUserID(t *testing.T) {
	svc := NewService(new(MockRepository), testRewards)

	_, err := svc.GetBalance(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCreditValidatesAmount(t *testing.T) {
	svc := NewService(new(MockRepository), testRewards)

	for _, amount := range []int64{0, -1, -100} {
		_, err := svc.Credit(context.Background(), testUserID, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "amount %d", amount)
	}
}

func TestDebitValidatesAmount(t *testing.T) {
	svc := NewService(new(MockRepository), testRewards)

	_, err := svc.Debit(context.Background(), testUserID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDebitPropagatesInsufficientFunds(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testRewards)

	repo.On("Debit", context.Background(), testUserID, int64(2000)).
		Return(int64(0), domain.ErrInsufficientFunds)

	_, err := svc.Debit(context.Background(), testUserID, 2000)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestAwardForTaskCompletion(t *testing.T) {
	tests := []struct {
		name string
		kind domain.TaskKind
		want int64
	}{
		{"ordinary task", domain.TaskKindOrdinary, 100},
		{"daily quest", domain.TaskKindDailyQuest, 300},
		{"timer completion", domain.TaskKindTimer, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo, testRewards)

			repo.On("Credit", context.Background(), testUserID, tt.want).Return(tt.want, nil)

			balance, err := svc.AwardForTaskCompletion(context.Background(), testUserID, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, balance)
			repo.AssertExpectations(t)
		})
	}
}

func TestAwardForTaskCompletionRejectsUnknownKind(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testRewards)

	_, err := svc.AwardForTaskCompletion(context.Background(), testUserID, domain.TaskKind("loitering"))
	assert.ErrorIs(t, err, domain.ErrInvalidTaskKind)
	repo.AssertNotCalled(t, "Credit")
}

func TestAwardForTaskCompletionPropagatesRepoError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testRewards)

	repoErr := errors.New("connection refused")
	repo.On("Credit", context.Background(), testUserID, int64(100)).Return(int64(0), repoErr)

	_, err := svc.AwardForTaskCompletion(context.Background(), testUserID, domain.TaskKindOrdinary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCreditDebitRoundTrip(t *testing.T) {
	ledger := newMemoryLedger()
	svc := NewService(ledger, testRewards)
	ctx := context.Background()

	for _, n := range []int64{1, 50, 2000} {
		before, err := svc.GetBalance(ctx, testUserID)
		require.NoError(t, err)

		_, err = svc.Credit(ctx, testUserID, n)
		require.NoError(t, err)

		after, err := svc.Debit(ctx, testUserID, n)
		require.NoError(t, err)
		assert.Equal(t, before, after, "credit then debit of %d must leave balance unchanged", n)
	}
}
