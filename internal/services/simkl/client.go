package simkl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/amaumene/movienarr/internal/cache"
	"github.com/amaumene/movienarr/internal/config"
	"github.com/amaumene/movienarr/internal/media"
)

const (
	baseURL = "https://api.simkl.com"

	maxRetryElapsed = 15 * time.Second
)

// Client handles communication with the Simkl API
type Client struct {
	baseURL     string
	clientID    string
	httpClient  *http.Client
	searchCache *cache.TTL[[]Choice]
	logger      *logrus.Logger
}

// NewClient creates a new Simkl API client. The search cache is injected
// so its capacity and expiry stay a construction-time decision.
func NewClient(cfg *config.Config, searchCache *cache.TTL[[]Choice], logger *logrus.Logger) (*Client, error) {
	if cfg.SimklClientID == "" {
		return nil, fmt.Errorf("simkl client ID is required")
	}

	base := baseURL
	if cfg.SimklBaseURL != "" {
		base = cfg.SimklBaseURL
	}

	return &Client{
		baseURL:     base,
		clientID:    cfg.SimklClientID,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		searchCache: searchCache,
		logger:      logger,
	}, nil
}

// Fetch retrieves the full metadata for one item and normalizes it into
// the canonical media model
func (c *Client) Fetch(ctx context.Context, kind media.Kind, simklID int64) (media.Media, error) {
	path := fmt.Sprintf("/%s/%d?extended=full&client_id=%s", kind.Slug(), simklID, c.clientID)

	var raw payload
	if err := c.doRequest(ctx, path, &raw); err != nil {
		return media.Media{}, fmt.Errorf("simkl fetch failed: %w", err)
	}

	m, err := Normalize(kind, raw)
	if err != nil {
		return media.Media{}, err
	}

	c.logger.WithFields(logrus.Fields{
		"kind":     kind,
		"simkl_id": simklID,
		"title":    m.Title,
	}).Debug("Fetched media from Simkl")

	return m, nil
}

// doRequest performs a GET request against the Simkl API, retrying
// transient failures. Client errors are not retried.
func (c *Client) doRequest(ctx context.Context, path string, result interface{}) error {
	fullURL := c.baseURL + path
	c.logger.WithField("url", fullURL).Debug("Making Simkl API request")

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			bodyBytes, _ := io.ReadAll(resp.Body)
			err := fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxRetryElapsed
	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}
