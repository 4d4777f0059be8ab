package gacha

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilyapp/lily/internal/domain"
)

func poolOf(rarities ...int) []domain.Item {
	pool := make([]domain.Item, len(rarities))
	for i, r := range rarities {
		pool[i] = domain.Item{ID: i + 1, Name: "item", Rarity: r}
	}
	return pool
}

func TestPickEmptyPool(t *testing.T) {
	_, err := Pick(nil, rand.Float64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestPickRejectsNonPositiveRarity(t *testing.T) {
	pool := poolOf(1, 0, 3)
	_, err := Pick(pool, rand.Float64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestPickSingleItem(t *testing.T) {
	pool := poolOf(7)
	item, err := Pick(pool, rand.Float64)
	require.NoError(t, err)
	assert.Equal(t, 1, item.ID)
}

func TestPickIsDeterministicForFixedDraw(t *testing.T) {
	// Weights 1,2,3 over total 6 give segments [0,1), [1,3), [3,6).
	pool := poolOf(1, 2, 3)

	cases := []struct {
		name   string
		draw   float64
		wantID int
	}{
		{"start of first segment", 0.0, 1},
		{"inside first segment", 0.99 / 6.0, 1},
		{"exact boundary resolves to earlier item", 1.0 / 6.0, 1},
		{"inside second segment", 2.5 / 6.0, 2},
		{"inside third segment", 5.0 / 6.0, 3},
		{"just under one", 0.999999, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, err := Pick(pool, func() float64 { return tc.draw })
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, item.ID)
		})
	}
}

func TestPickDistributionMatchesWeights(t *testing.T) {
	// Chi-square goodness of fit over 10k draws against weights 1:2:3.
	// Critical value for 2 degrees of freedom at p=0.001 is 13.82; a seeded
	// source keeps the test deterministic.
	pool := poolOf(1, 2, 3)
	rnd := rand.New(rand.NewSource(42))

	const draws = 10000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		item, err := Pick(pool, rnd.Float64)
		require.NoError(t, err)
		counts[item.ID]++
	}

	total := 0
	for _, item := range pool {
		total += item.Rarity
	}

	var chiSquare float64
	for _, item := range pool {
		expected := float64(draws) * float64(item.Rarity) / float64(total)
		diff := float64(counts[item.ID]) - expected
		chiSquare += diff * diff / expected
	}

	assert.Less(t, chiSquare, 13.82, "observed counts %v diverge from weights", counts)
}

func TestPickNeverReturnsZeroWeightShare(t *testing.T) {
	// A heavily skewed pool still has every item reachable.
	pool := poolOf(1, 1000)
	rnd := rand.New(rand.NewSource(7))

	counts := make(map[int]int)
	for i := 0; i < 20000; i++ {
		item, err := Pick(pool, rnd.Float64)
		require.NoError(t, err)
		counts[item.ID]++
	}

	assert.Greater(t, counts[1], 0)
	assert.Greater(t, counts[2], counts[1])
}
