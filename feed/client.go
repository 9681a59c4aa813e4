package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const maxFetchRetries = 3

// Client fetches raw GTFS-Realtime protobuf bytes from the MTA endpoints.
// It owns header construction (API key, protobuf accept) and retry; decoding
// stays in Decode.
type Client struct {
	httpClient *http.Client
	apiKey     string
}

// NewClient creates a feed client. An empty apiKey omits the x-api-key
// header; the MTA feeds no longer require one but some mirrors still do.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
	}
}

// Fetch retrieves one feed and returns its raw payload. Transient HTTP
// failures are retried with exponential backoff. Returns nil bytes if url is
// empty (allows optional feeds).
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, nil
	}

	var body []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/x-protobuf")
		if c.apiKey != "" {
			req.Header.Set("x-api-key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", url, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchRetries), ctx)
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("retry_in", wait).Str("url", url).Msg("Feed fetch failed, retrying")
	}
	if err := backoff.RetryNotify(op, bo, notify); err != nil {
		return nil, err
	}
	return body, nil
}

// FetchAll fetches the realtime feed and the separate subway-alerts feed.
// Empty URLs are skipped and return nil for that feed.
func (c *Client) FetchAll(ctx context.Context, feedURL, alertsURL string) ([]byte, []byte, error) {
	fb, err := c.Fetch(ctx, feedURL)
	if err != nil {
		return nil, nil, fmt.Errorf("realtime feed: %w", err)
	}

	ab, err := c.Fetch(ctx, alertsURL)
	if err != nil {
		return nil, nil, fmt.Errorf("subway alerts: %w", err)
	}

	return fb, ab, nil
}
