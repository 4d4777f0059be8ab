package imagesearch

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/lilyapp/lily/internal/logger"
	"github.com/lilyapp/lily/internal/metrics"
)

// Cache is a process-wide pool of images drawn from the upstream search API.
// Each image is handed out at most once; when the pool runs dry, its batch
// ages past the TTL, or a draw asks for a different tag set, the cache
// refetches a fresh batch. All operations are serialized on a single mutex so
// concurrent draws never hand out the same image twice.
type Cache struct {
	mu          sync.Mutex
	client      Client
	tags        []string
	entries     []Image
	batchTags   []string
	lastRefresh time.Time
	maxSize     int
	ttl         time.Duration

	// injectable for tests
	now  func() time.Time
	intn func(n int) int
}

// NewCache creates a Cache that fills itself from client using the given
// default search tags. maxSize bounds how many images are kept per refill and
// ttl bounds how long a batch may be served before being discarded.
func NewCache(client Client, tags []string, maxSize int, ttl time.Duration) *Cache {
	return &Cache{
		client:  client,
		tags:    tags,
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
		intn:    rand.Intn,
	}
}

// Draw removes and returns one random image from the cache, refilling from
// upstream first when the pool is empty, past its TTL, or filled for a
// different tag set. An empty tags slice means the configured defaults.
// When a needed refill fails the error carries domain.ErrUpstreamUnavailable
// and the cache state is left untouched; expired entries are never served.
func (c *Cache) Draw(ctx context.Context, tags []string) (Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := logger.FromContext(ctx)

	if len(tags) == 0 {
		tags = c.tags
	}

	if c.needsRefill(tags) {
		if len(c.entries) == 0 {
			log.Debug(LogMsgCacheDrained, "tags", tags)
		}
		if err := c.refill(ctx, tags); err != nil {
			log.Warn(LogMsgRefillFailed, "tags", tags, "error", err)
			metrics.ImageCacheDraws.WithLabelValues(metrics.ResultFailure).Inc()
			return Image{}, fmt.Errorf("%s: %w", ErrContextRefillFailed, err)
		}
	}

	idx := c.intn(len(c.entries))
	img := c.entries[idx]
	c.entries[idx] = c.entries[len(c.entries)-1]
	c.entries = c.entries[:len(c.entries)-1]

	metrics.ImageCacheDraws.WithLabelValues(metrics.ResultSuccess).Inc()
	return img, nil
}

// Size returns the number of images currently held. Intended for tests and
// readiness reporting.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// needsRefill reports whether the current batch may still be drawn from.
// A batch expires on age alone, even with entries remaining.
func (c *Cache) needsRefill(tags []string) bool {
	if len(c.entries) == 0 {
		return true
	}
	if !slices.Equal(tags, c.batchTags) {
		return true
	}
	return c.now().Sub(c.lastRefresh) >= c.ttl
}

// refill replaces the pool with a fresh upstream batch. On error the
// existing entries and lastRefresh are left as they were.
func (c *Cache) refill(ctx context.Context, tags []string) error {
	images, err := c.client.Search(ctx, tags)
	if err != nil {
		metrics.ImageCacheRefills.WithLabelValues(metrics.ResultFailure).Inc()
		return err
	}

	if len(images) > c.maxSize {
		images = images[:c.maxSize]
	}
	c.entries = images
	c.batchTags = tags
	c.lastRefresh = c.now()

	metrics.ImageCacheRefills.WithLabelValues(metrics.ResultSuccess).Inc()
	logger.FromContext(ctx).Info(LogMsgCacheRefilled, "count", len(c.entries), "tags", tags)
	return nil
}
