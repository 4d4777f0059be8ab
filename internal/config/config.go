package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lilyapp/lily/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	APIKey      string // API key for authentication

	// Reward settings. This table is the single source of truth for gacha
	// costs and task rewards; handlers and services must not define their own.
	Rewards RewardConfig

	// Image search settings
	ImageSearch ImageSearchConfig
}

// RewardConfig is the canonical cost/reward table
type RewardConfig struct {
	GachaCost       int64
	ImageGachaCost  int64
	TaskRewards     map[domain.TaskKind]int64
}

// ImageSearchConfig controls the external image API client and its cache
type ImageSearchConfig struct {
	BaseURL      string
	APIKey       string
	SearchTags   []string
	Timeout      time.Duration
	CacheMaxSize int
	CacheTTL     time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "lily"),
		APIKey:      getEnv("API_KEY", ""),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	rewards, err := loadRewardConfig()
	if err != nil {
		return nil, err
	}
	cfg.Rewards = rewards

	imageSearch, err := loadImageSearchConfig()
	if err != nil {
		return nil, err
	}
	cfg.ImageSearch = imageSearch

	return cfg, nil
}

func loadRewardConfig() (RewardConfig, error) {
	gachaCost, err := getEnvInt64("GACHA_COST", DefaultGachaCost)
	if err != nil {
		return RewardConfig{}, err
	}
	imageGachaCost, err := getEnvInt64("IMAGE_GACHA_COST", DefaultImageGachaCost)
	if err != nil {
		return RewardConfig{}, err
	}
	ordinary, err := getEnvInt64("TASK_REWARD", DefaultTaskReward)
	if err != nil {
		return RewardConfig{}, err
	}
	dailyQuest, err := getEnvInt64("DAILY_QUEST_REWARD", DefaultDailyQuestReward)
	if err != nil {
		return RewardConfig{}, err
	}
	timer, err := getEnvInt64("TIMER_REWARD", DefaultTimerReward)
	if err != nil {
		return RewardConfig{}, err
	}

	cfg := RewardConfig{
		GachaCost:      gachaCost,
		ImageGachaCost: imageGachaCost,
		TaskRewards: map[domain.TaskKind]int64{
			domain.TaskKindOrdinary:   ordinary,
			domain.TaskKindDailyQuest: dailyQuest,
			domain.TaskKindTimer:      timer,
		},
	}

	if cfg.GachaCost <= 0 || cfg.ImageGachaCost <= 0 {
		return RewardConfig{}, fmt.Errorf("gacha costs must be positive")
	}
	for kind, amount := range cfg.TaskRewards {
		if amount <= 0 {
			return RewardConfig{}, fmt.Errorf("task reward for %s must be positive", kind)
		}
	}

	return cfg, nil
}

func loadImageSearchConfig() (ImageSearchConfig, error) {
	timeoutSec, err := getEnvInt("IMAGE_SEARCH_TIMEOUT_SECONDS", DefaultImageSearchTimeoutSeconds)
	if err != nil {
		return ImageSearchConfig{}, err
	}
	cacheSize, err := getEnvInt("IMAGE_CACHE_MAX_SIZE", DefaultImageCacheMaxSize)
	if err != nil {
		return ImageSearchConfig{}, err
	}
	cacheTTLMin, err := getEnvInt("IMAGE_CACHE_TTL_MINUTES", DefaultImageCacheTTLMinutes)
	if err != nil {
		return ImageSearchConfig{}, err
	}

	return ImageSearchConfig{
		BaseURL:      getEnv("IMAGE_SEARCH_BASE_URL", DefaultImageSearchBaseURL),
		APIKey:       getEnv("IMAGE_SEARCH_API_KEY", ""),
		SearchTags:   splitTags(getEnv("IMAGE_SEARCH_TAGS", DefaultImageSearchTags)),
		Timeout:      time.Duration(timeoutSec) * time.Second,
		CacheMaxSize: cacheSize,
		CacheTTL:     time.Duration(cacheTTLMin) * time.Minute,
	}, nil
}

// splitTags parses a comma separated tag list, dropping empty entries
func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
