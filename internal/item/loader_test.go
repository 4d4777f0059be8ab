package item

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lilyapp/lily/internal/domain"
)

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

func (m *MockItemRepository) FindOrCreateByImageURL(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, it)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) InsertItem(ctx context.Context, it *domain.Item) (int, error) {
	args := m.Called(ctx, it)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, itemID int, it *domain.Item) error {
	args := m.Called(ctx, itemID, it)
	return args.Error(0)
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesCatalog(t *testing.T) {
	path := writeConfigFile(t, `{
		"version": "1",
		"description": "test catalog",
		"items": [
			{"name": "Sticker", "rarity": 3, "description": "A small sticker", "color1": "#ffaa00"},
			{"name": "Badge", "rarity": 1}
		]
	}`)

	loader := NewLoader()
	config, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1", config.Version)
	require.Len(t, config.Items, 2)
	assert.Equal(t, "Sticker", config.Items[0].Name)
	assert.Equal(t, 3, config.Items[0].Rarity)
	require.NotNil(t, config.Items[0].Color1)
	assert.Equal(t, "#ffaa00", *config.Items[0].Color1)
	assert.Nil(t, config.Items[1].Color1)
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"items": [`)
	loader := NewLoader()
	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	loader := NewLoader()

	cases := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{"nil config", nil, ErrInvalidConfig},
		{"no items", &Config{}, ErrInvalidConfig},
		{
			"empty name",
			&Config{Items: []Def{{Name: "", Rarity: 1}}},
			ErrInvalidConfig,
		},
		{
			"duplicate name",
			&Config{Items: []Def{{Name: "Sticker", Rarity: 1}, {Name: "Sticker", Rarity: 2}}},
			ErrDuplicateName,
		},
		{
			"zero rarity",
			&Config{Items: []Def{{Name: "Sticker", Rarity: 0}}},
			ErrInvalidConfig,
		},
		{
			"valid",
			&Config{Items: []Def{{Name: "Sticker", Rarity: 1}, {Name: "Badge", Rarity: 5}}},
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := loader.Validate(tc.config)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr))
		})
	}
}

func TestSyncToDatabaseInsertsNewItems(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("GetAllItems", mock.Anything).Return([]domain.Item{}, nil)
	repo.On("InsertItem", mock.Anything, mock.MatchedBy(func(it *domain.Item) bool {
		return it.Name == "Sticker" && it.Rarity == 2
	})).Return(1, nil)

	loader := NewLoader()
	config := &Config{Items: []Def{{Name: "Sticker", Rarity: 2}}}

	result, err := loader.SyncToDatabase(context.Background(), config, repo)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsInserted)
	assert.Equal(t, 0, result.ItemsUpdated)
	repo.AssertExpectations(t)
}

func TestSyncToDatabaseSkipsUnchangedAndUpdatesChanged(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("GetAllItems", mock.Anything).Return([]domain.Item{
		{ID: 1, Name: "Sticker", Rarity: 2},
		{ID: 2, Name: "Badge", Rarity: 1, Description: "old"},
	}, nil)
	repo.On("UpdateItem", mock.Anything, 2, mock.MatchedBy(func(it *domain.Item) bool {
		return it.Description == "new"
	})).Return(nil)

	loader := NewLoader()
	config := &Config{Items: []Def{
		{Name: "Sticker", Rarity: 2},
		{Name: "Badge", Rarity: 1, Description: "new"},
	}}

	result, err := loader.SyncToDatabase(context.Background(), config, repo)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ItemsInserted)
	assert.Equal(t, 1, result.ItemsUpdated)
	assert.Equal(t, 1, result.ItemsSkipped)

	repo.AssertNotCalled(t, "InsertItem", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSyncToDatabaseIsIdempotent(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("GetAllItems", mock.Anything).Return([]domain.Item{
		{ID: 1, Name: "Sticker", Rarity: 2},
	}, nil)

	loader := NewLoader()
	config := &Config{Items: []Def{{Name: "Sticker", Rarity: 2}}}

	result, err := loader.SyncToDatabase(context.Background(), config, repo)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsSkipped)
	repo.AssertNotCalled(t, "InsertItem", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything)
}
