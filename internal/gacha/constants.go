package gacha

const (
	// MinRarity is the lowest weight an item may carry in the pool
	MinRarity = 1

	// ExternalImageRarity is the weight assigned to items created from
	// external images. They are drawn directly, never through the weighted
	// selector, so the value only matters if one later joins the pool.
	ExternalImageRarity = 1

	// itemLookupCacheSize bounds the URL-to-item lookup cache
	itemLookupCacheSize = 128
)

// Log messages
const (
	LogMsgPullStarted        = "Gacha pull started"
	LogMsgPullCompleted      = "Gacha pull completed"
	LogMsgPullRefunded       = "Gacha pull failed after debit, cost refunded"
	LogMsgRefundFailed       = "CRITICAL: refund after failed gacha pull did not land"
	LogMsgItemLookupCacheHit = "Item resolved from lookup cache"
)

// Error contexts
const (
	ErrContextDebitFailed       = "failed to debit pull cost"
	ErrContextSelectFailed      = "failed to select item"
	ErrContextResolveItemFailed = "failed to resolve item for image"
	ErrContextRecordFailed      = "failed to record acquisition"
	ErrContextRefundFailed      = "failed to refund pull cost"
)
