package domain

// TaskKind classifies a completed task for reward purposes
type TaskKind string

const (
	TaskKindOrdinary   TaskKind = "ordinary"
	TaskKindDailyQuest TaskKind = "daily_quest"
	TaskKindTimer      TaskKind = "timer"
)

// Valid reports whether the task kind is one of the known classifications
func (k TaskKind) Valid() bool {
	switch k {
	case TaskKindOrdinary, TaskKindDailyQuest, TaskKindTimer:
		return true
	}
	return false
}

// PullMode selects where a gacha pull draws its item from
type PullMode string

const (
	// PullModeInternalPool draws from the persisted item catalog using
	// rarity-weighted selection
	PullModeInternalPool PullMode = "internal_pool"
	// PullModeExternalImage draws from the external image search API via the
	// process-local image cache
	PullModeExternalImage PullMode = "external_image"
)

// Valid reports whether the pull mode is known
func (m PullMode) Valid() bool {
	return m == PullModeInternalPool || m == PullModeExternalImage
}

// PullResult is the outcome of a successful gacha pull
type PullResult struct {
	Item       *Item `json:"item"`
	NewBalance int64 `json:"new_balance"`
}
