package imagesearch

import "time"

const (
	// MaxRetries is the number of additional attempts after a failed search
	MaxRetries = 2
	// RetryDelay is the pause between retry attempts
	RetryDelay = 500 * time.Millisecond
)

// Log messages
const (
	LogMsgSearchRetrying = "Image search failed, retrying"
	LogMsgCacheRefilled  = "Image cache refilled from upstream"
	LogMsgCacheDrained   = "Image cache drained, refilling"
	LogMsgRefillFailed   = "Image cache refill failed, keeping current entries"
)

// Error contexts
const (
	ErrContextBuildRequestFailed = "failed to build search request"
	ErrContextRefillFailed       = "failed to refill image cache"
)
