package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lilyapp/lily/internal/config"
	"github.com/lilyapp/lily/internal/database"
	"github.com/lilyapp/lily/internal/database/postgres"
	"github.com/lilyapp/lily/internal/gacha"
	"github.com/lilyapp/lily/internal/imagesearch"
	"github.com/lilyapp/lily/internal/item"
	"github.com/lilyapp/lily/internal/reward"
	"github.com/lilyapp/lily/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := context.Background()

	pool, err := database.NewPool(
		cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime,
	)
	if err != nil {
		slog.Error("Failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	rewardRepo := postgres.NewRewardRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	acquisitionRepo := postgres.NewAcquisitionRepository(pool)

	// Seed the catalog from configuration
	if err := syncCatalog(ctx, itemRepo); err != nil {
		slog.Error("Failed to sync item catalog", "error", err)
		os.Exit(1)
	}

	// Services
	rewardService := reward.NewService(rewardRepo, cfg.Rewards.TaskRewards)

	imageClient := imagesearch.NewClient(cfg.ImageSearch.BaseURL, cfg.ImageSearch.APIKey, cfg.ImageSearch.Timeout)
	imageCache := imagesearch.NewCache(imageClient, cfg.ImageSearch.SearchTags, cfg.ImageSearch.CacheMaxSize, cfg.ImageSearch.CacheTTL)

	gachaService := gacha.NewService(rewardService, itemRepo, acquisitionRepo, imageCache, gacha.Costs{
		InternalPool:  cfg.Rewards.GachaCost,
		ExternalImage: cfg.Rewards.ImageGachaCost,
	})

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, rewardService, gachaService, itemRepo)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func syncCatalog(ctx context.Context, itemRepo *postgres.ItemRepository) error {
	loader := item.NewLoader()

	catalog, err := loader.Load(config.ConfigPathItems)
	if err != nil {
		return err
	}
	if err := loader.Validate(catalog); err != nil {
		return err
	}

	_, err = loader.SyncToDatabase(ctx, catalog, itemRepo)
	return err
}
