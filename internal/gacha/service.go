package gacha

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/lilyapp/lily/internal/domain"
	"github.com/lilyapp/lily/internal/imagesearch"
	"github.com/lilyapp/lily/internal/logger"
	"github.com/lilyapp/lily/internal/metrics"
	"github.com/lilyapp/lily/internal/repository"
	"github.com/lilyapp/lily/internal/reward"
)

// ImageSource supplies external images for image-mode pulls. An empty tags
// slice means the source's configured defaults.
type ImageSource interface {
	Draw(ctx context.Context, tags []string) (imagesearch.Image, error)
}

// PullParams carries optional per-pull inputs.
type PullParams struct {
	// Tags narrows the external image search for image-mode pulls.
	// Ignored for catalog pulls.
	Tags []string
}

// Service defines the interface for gacha operations
type Service interface {
	// Pull performs one gacha draw for the user: debits the mode's cost,
	// selects an item, records the acquisition and returns the item with the
	// user's new balance. Any failure after the debit is compensated by
	// crediting the cost back.
	Pull(ctx context.Context, userID string, mode domain.PullMode, params PullParams) (*domain.PullResult, error)

	// GetInventory returns the user's acquired items grouped by item
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
}

// Costs holds the per-mode pull prices
type Costs struct {
	InternalPool  int64
	ExternalImage int64
}

type service struct {
	ledger       reward.Service
	items        repository.Item
	acquisitions repository.Acquisition
	images       ImageSource
	costs        Costs

	// itemByURL short-circuits the find-or-create round trip for images the
	// process has already resolved
	itemByURL *expirable.LRU[string, *domain.Item]

	rnd func() float64
}

// NewService creates a new gacha service
func NewService(
	ledger reward.Service,
	items repository.Item,
	acquisitions repository.Acquisition,
	images ImageSource,
	costs Costs,
) Service {
	return &service{
		ledger:       ledger,
		items:        items,
		acquisitions: acquisitions,
		images:       images,
		costs:        costs,
		itemByURL:    expirable.NewLRU[string, *domain.Item](itemLookupCacheSize, nil, time.Hour),
		rnd:          rand.Float64,
	}
}

func (s *service) Pull(ctx context.Context, userID string, mode domain.PullMode, params PullParams) (*domain.PullResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", domain.ErrInvalidArgument)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPullMode, mode)
	}

	cost := s.costFor(mode)
	log.Info(LogMsgPullStarted, "user_id", userID, "mode", mode, "cost", cost)

	newBalance, err := s.ledger.Debit(ctx, userID, cost)
	if err != nil {
		// Nothing was charged, so nothing to compensate.
		metrics.PullsTotal.WithLabelValues(string(mode), metrics.ResultFailure).Inc()
		return nil, fmt.Errorf("%s: %w", ErrContextDebitFailed, err)
	}

	item, err := s.selectItem(ctx, mode, params)
	if err != nil {
		return nil, s.refundAndWrap(ctx, userID, mode, cost, err)
	}

	if err := s.recordAcquisition(ctx, userID, item.ID); err != nil {
		return nil, s.refundAndWrap(ctx, userID, mode, cost, err)
	}

	metrics.PullsTotal.WithLabelValues(string(mode), metrics.ResultSuccess).Inc()
	log.Info(LogMsgPullCompleted, "user_id", userID, "mode", mode, "item_id", item.ID, "new_balance", newBalance)

	return &domain.PullResult{Item: item, NewBalance: newBalance}, nil
}

func (s *service) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", domain.ErrInvalidArgument)
	}
	return s.acquisitions.GetInventory(ctx, userID)
}

func (s *service) costFor(mode domain.PullMode) int64 {
	if mode == domain.PullModeExternalImage {
		return s.costs.ExternalImage
	}
	return s.costs.InternalPool
}

func (s *service) selectItem(ctx context.Context, mode domain.PullMode, params PullParams) (*domain.Item, error) {
	if mode == domain.PullModeExternalImage {
		return s.selectExternalImage(ctx, params.Tags)
	}
	return s.selectFromPool(ctx)
}

func (s *service) selectFromPool(ctx context.Context) (*domain.Item, error) {
	pool, err := s.items.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSelectFailed, err)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%s: %w", ErrContextSelectFailed, domain.ErrNoItemsAvailable)
	}

	item, err := Pick(pool, s.rnd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSelectFailed, err)
	}
	return &item, nil
}

func (s *service) selectExternalImage(ctx context.Context, tags []string) (*domain.Item, error) {
	img, err := s.images.Draw(ctx, tags)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSelectFailed, err)
	}

	if cached, ok := s.itemByURL.Get(img.Path); ok {
		logger.FromContext(ctx).Debug(LogMsgItemLookupCacheHit, "image_url", img.Path)
		return cached, nil
	}

	imageURL := img.Path
	item, err := s.items.FindOrCreateByImageURL(ctx, &domain.Item{
		Name:        fmt.Sprintf("Image %s", img.ID),
		Rarity:      ExternalImageRarity,
		Description: strings.Join(img.Tags, ", "),
		ImageURL:    &imageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextResolveItemFailed, err)
	}

	s.itemByURL.Add(imageURL, item)
	return item, nil
}

func (s *service) recordAcquisition(ctx context.Context, userID string, itemID int) error {
	tx, err := s.acquisitions.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextRecordFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.InsertAcquisition(ctx, userID, itemID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextRecordFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextRecordFailed, err)
	}
	return nil
}

// refundAndWrap credits the pull cost back after a post-debit failure and
// returns the original failure. A refund that itself fails is logged loudly
// and attached to the returned error; it must never be silently dropped.
// The refund runs on a context detached from the request's cancellation so
// it is still attempted when the caller has already gone away.
func (s *service) refundAndWrap(ctx context.Context, userID string, mode domain.PullMode, cost int64, cause error) error {
	log := logger.FromContext(ctx)
	metrics.PullsTotal.WithLabelValues(string(mode), metrics.ResultFailure).Inc()

	refundCtx := context.WithoutCancel(ctx)
	if _, refundErr := s.ledger.Credit(refundCtx, userID, cost); refundErr != nil {
		metrics.RefundsTotal.WithLabelValues(metrics.OutcomeRefundFailed).Inc()
		log.Error(LogMsgRefundFailed,
			"user_id", userID,
			"amount", cost,
			"cause", cause,
			"refund_error", refundErr)
		return errors.Join(cause, fmt.Errorf("%s: %w", ErrContextRefundFailed, refundErr))
	}

	metrics.RefundsTotal.WithLabelValues(metrics.OutcomeRefunded).Inc()
	log.Warn(LogMsgPullRefunded, "user_id", userID, "amount", cost, "cause", cause)
	return cause
}
