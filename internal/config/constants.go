package config

const (
	// Configuration file paths
	ConfigPathItems = "configs/items.json"

	// Default gacha costs. The catalog pull is intentionally the expensive
	// one; the external image pull is cheaper because the item has no curated
	// rarity.
	DefaultGachaCost      int64 = 2000
	DefaultImageGachaCost int64 = 1000

	// Default task completion rewards
	DefaultTaskReward       int64 = 100
	DefaultDailyQuestReward int64 = 300
	DefaultTimerReward      int64 = 200

	// Image search defaults
	DefaultImageSearchBaseURL        = "https://wallhaven.cc/api/v1"
	DefaultImageSearchTags           = "anime,scenery"
	DefaultImageSearchTimeoutSeconds = 15
	DefaultImageCacheMaxSize         = 24
	DefaultImageCacheTTLMinutes      = 10
)
