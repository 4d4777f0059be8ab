package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lilyapp/lily/internal/domain"
	"github.com/lilyapp/lily/internal/logger"
	"github.com/lilyapp/lily/internal/repository"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateName = errors.New("duplicate item name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON catalog file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single catalog entry in the JSON
type Def struct {
	Name        string  `json:"name"`
	Rarity      int     `json:"rarity"`
	Description string  `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Color1      *string `json:"color1,omitempty"`
	Color2      *string `json:"color2,omitempty"`
}

// Loader handles loading, validating and syncing the item catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Item) (*SyncResult, error)
}

// SyncResult contains the result of syncing the catalog to the database
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
}

type itemLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{}
}

// Load reads and parses a catalog JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]

		if def.Name == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, i)
		}
		if names[def.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateName, def.Name)
		}
		names[def.Name] = true

		if def.Rarity < MinConfigRarity {
			return fmt.Errorf(ErrFmtItemBadRarity, ErrInvalidConfig, def.Name, def.Rarity)
		}
	}

	return nil
}

// SyncToDatabase syncs the catalog to the database idempotently. Items are
// matched by name; existing rows are only touched when a field changed.
func (l *itemLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Item) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	existing, err := repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}

	existingByName := make(map[string]*domain.Item, len(existing))
	for i := range existing {
		existingByName[existing[i].Name] = &existing[i]
	}

	result := &SyncResult{}
	for _, def := range config.Items {
		if err := l.syncOneItem(ctx, repo, def, existingByName, result); err != nil {
			return nil, err
		}
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)

	return result, nil
}

func (l *itemLoader) syncOneItem(ctx context.Context, repo repository.Item, def Def, existingByName map[string]*domain.Item, result *SyncResult) error {
	log := logger.FromContext(ctx)
	want := defToItem(def)

	current, ok := existingByName[def.Name]
	if !ok {
		id, err := repo.InsertItem(ctx, want)
		if err != nil {
			return fmt.Errorf(ErrMsgInsertItemFailed, def.Name, err)
		}
		log.Info(LogMsgInsertedItem, "name", def.Name, "item_id", id)
		result.ItemsInserted++
		return nil
	}

	if itemMatchesDef(current, want) {
		result.ItemsSkipped++
		return nil
	}

	if err := repo.UpdateItem(ctx, current.ID, want); err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, def.Name, err)
	}
	log.Info(LogMsgUpdatedItem, "name", def.Name, "item_id", current.ID)
	result.ItemsUpdated++
	return nil
}

func defToItem(def Def) *domain.Item {
	return &domain.Item{
		Name:        def.Name,
		Rarity:      def.Rarity,
		Description: def.Description,
		ImageURL:    def.ImageURL,
		Color1:      def.Color1,
		Color2:      def.Color2,
	}
}

func itemMatchesDef(current *domain.Item, want *domain.Item) bool {
	return current.Rarity == want.Rarity &&
		current.Description == want.Description &&
		ptrEqual(current.ImageURL, want.ImageURL) &&
		ptrEqual(current.Color1, want.Color1) &&
		ptrEqual(current.Color2, want.Color2)
}

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
