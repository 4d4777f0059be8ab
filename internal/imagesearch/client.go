package imagesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lilyapp/lily/internal/domain"
	"github.com/lilyapp/lily/internal/logger"
)

// Image is one result from the external image search API
type Image struct {
	ID     string   `json:"id"`
	Path   string   `json:"path"`
	Source string   `json:"source"`
	Tags   []string `json:"tags"`
}

// Client defines the interface for the external image search API.
// The API is treated as unreliable: implementations return
// domain.ErrUpstreamUnavailable for transport failures, rate limits and
// empty result sets.
type Client interface {
	Search(ctx context.Context, tags []string) ([]Image, error)
}

// httpDoer matches the subset of *http.Client the client needs, so tests can
// inject a fake transport
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	http    httpDoer
	retries int
}

// NewClient creates a Client against the given API base URL.
// Transient network errors are retried a small fixed number of times.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		retries: MaxRetries,
	}
}

// searchResponse mirrors the wallhaven search payload
type searchResponse struct {
	Data []struct {
		ID     string `json:"id"`
		Path   string `json:"path"`
		Source string `json:"source"`
		Tags   []struct {
			Name string `json:"name"`
		} `json:"tags"`
	} `json:"data"`
}

func (c *httpClient) Search(ctx context.Context, tags []string) ([]Image, error) {
	log := logger.FromContext(ctx)

	query := url.Values{}
	query.Set("sorting", "random")
	if len(tags) > 0 {
		query.Set("q", strings.Join(tags, " "))
	}
	if c.apiKey != "" {
		query.Set("apikey", c.apiKey)
	}
	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, query.Encode())

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			log.Warn(LogMsgSearchRetrying, "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, ctx.Err())
			case <-time.After(RetryDelay):
			}
		}

		images, retryable, err := c.searchOnce(ctx, endpoint)
		if err == nil {
			return images, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	return nil, lastErr
}

// searchOnce performs a single search request. The second return value
// reports whether the failure is worth retrying.
func (c *httpClient) searchOnce(ctx context.Context, endpoint string) ([]Image, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrContextBuildRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, fmt.Errorf("%w: rate limited", domain.ErrUpstreamUnavailable)
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("%w: malformed response: %s", domain.ErrUpstreamUnavailable, err)
	}

	if len(payload.Data) == 0 {
		return nil, false, fmt.Errorf("%w: no results", domain.ErrUpstreamUnavailable)
	}

	images := make([]Image, 0, len(payload.Data))
	for _, d := range payload.Data {
		img := Image{
			ID:     d.ID,
			Path:   d.Path,
			Source: d.Source,
		}
		for _, t := range d.Tags {
			img.Tags = append(img.Tags, t.Name)
		}
		images = append(images, img)
	}
	return images, false, nil
}
