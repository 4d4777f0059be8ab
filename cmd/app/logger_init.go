package main

import (
	"os"

	"github.com/lilyapp/lily/internal/config"
	"github.com/lilyapp/lily/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only help in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"lily",
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig, os.Stdout)
}
