package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilyapp/lily/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "lily", cfg.DBName)
	assert.Equal(t, DefaultGachaCost, cfg.Rewards.GachaCost)
	assert.Equal(t, DefaultImageGachaCost, cfg.Rewards.ImageGachaCost)
	assert.Equal(t, DefaultTaskReward, cfg.Rewards.TaskRewards[domain.TaskKindOrdinary])
	assert.Equal(t, DefaultDailyQuestReward, cfg.Rewards.TaskRewards[domain.TaskKindDailyQuest])
	assert.Equal(t, DefaultTimerReward, cfg.Rewards.TaskRewards[domain.TaskKindTimer])
	assert.Equal(t, DefaultImageCacheMaxSize, cfg.ImageSearch.CacheMaxSize)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("GACHA_COST", "500")
	t.Setenv("DAILY_QUEST_REWARD", "1000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, int64(500), cfg.Rewards.GachaCost)
	assert.Equal(t, int64(1000), cfg.Rewards.TaskRewards[domain.TaskKindDailyQuest])
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive cost", func(t *testing.T) {
		t.Setenv("GACHA_COST", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive reward", func(t *testing.T) {
		t.Setenv("TIMER_REWARD", "-5")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "lily",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "lilydb",
	}

	assert.Equal(t, "postgres://lily:secret@db:5433/lilydb?sslmode=disable", cfg.GetDBConnString())
}
