package gacha

import (
	"fmt"

	"github.com/lilyapp/lily/internal/domain"
)

// Pick selects one item from pool with probability proportional to each
// item's rarity weight. rnd must return a value in [0, 1). Ties at segment
// boundaries resolve to the earlier item, so the selection is fully
// determined by pool order and the drawn value.
func Pick(pool []domain.Item, rnd func() float64) (domain.Item, error) {
	if len(pool) == 0 {
		return domain.Item{}, fmt.Errorf("%w: item pool is empty", domain.ErrInvalidArgument)
	}

	var total int64
	for _, item := range pool {
		if item.Rarity < MinRarity {
			return domain.Item{}, fmt.Errorf("%w: item %d has rarity %d", domain.ErrInvalidArgument, item.ID, item.Rarity)
		}
		total += int64(item.Rarity)
	}

	target := rnd() * float64(total)

	var cursor float64
	for _, item := range pool {
		cursor += float64(item.Rarity)
		if target <= cursor {
			return item, nil
		}
	}

	// Floating point edge: rnd() close enough to 1 that target never
	// dropped below the running sum. Fall back to the last item.
	return pool[len(pool)-1], nil
}
