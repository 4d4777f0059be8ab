package gacha

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lilyapp/lily/internal/domain"
	"github.com/lilyapp/lily/internal/imagesearch"
	"github.com/lilyapp/lily/internal/repository"
)

// MockLedger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) GetBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) AwardForTaskCompletion(ctx context.Context, userID string, kind domain.TaskKind) (int64, error) {
	args := m.Called(ctx, userID, kind)
	return args.Get(0).(int64), args.Error(1)
}

// MockItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetItemByImageURL(ctx context.Context, imageURL string) (*domain.Item, error) {
	args := m.Called(ctx, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindOrCreateByImageURL(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	args := m.Called(ctx, item)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, itemID int, item *domain.Item) error {
	args := m.Called(ctx, itemID, item)
	return args.Error(0)
}

// MockAcquisitionRepository
type MockAcquisitionRepository struct {
	mock.Mock
}

func (m *MockAcquisitionRepository) InsertAcquisition(ctx context.Context, userID string, itemID int) (*domain.Acquisition, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Acquisition), args.Error(1)
}

func (m *MockAcquisitionRepository) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockAcquisitionRepository) CountByUserAndItem(ctx context.Context, userID string, itemID int) (int, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockAcquisitionRepository) BeginTx(ctx context.Context) (repository.AcquisitionTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AcquisitionTx), args.Error(1)
}

// MockAcquisitionTx
type MockAcquisitionTx struct {
	mock.Mock
}

func (m *MockAcquisitionTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAcquisitionTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAcquisitionTx) InsertAcquisition(ctx context.Context, userID string, itemID int) (*domain.Acquisition, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Acquisition), args.Error(1)
}

// MockImageSource
type MockImageSource struct {
	mock.Mock
}

func (m *MockImageSource) Draw(ctx context.Context, tags []string) (imagesearch.Image, error) {
	args := m.Called(ctx, tags)
	return args.Get(0).(imagesearch.Image), args.Error(1)
}
