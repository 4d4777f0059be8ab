package item

const (
	// MinConfigRarity is the lowest rarity the catalog accepts
	MinConfigRarity = 1
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Database operation error messages
const (
	ErrMsgGetExistingItemsFailed = "failed to get existing items: %w"
	ErrMsgInsertItemFailed       = "failed to insert item '%s': %w"
	ErrMsgUpdateItemFailed       = "failed to update item '%s': %w"
)

// Log messages
const (
	LogMsgSyncCompleted = "Items sync completed"
	LogMsgInsertedItem  = "Inserted item"
	LogMsgUpdatedItem   = "Updated item"
)

// Format strings for error construction
const (
	ErrFmtItemAtIndexEmpty = "%w: item at index %d has empty name"
	ErrFmtItemBadRarity    = "%w: item '%s' has rarity %d below minimum"
)
