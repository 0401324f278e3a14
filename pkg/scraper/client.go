package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const maxAttempts = 3

// Client downloads course listing pages.
type Client struct {
	httpClient *http.Client
	log        zerolog.Logger
	useCache   bool
	backoff    time.Duration
}

// NewClient creates a new scraper client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log:      log,
		useCache: true,
		backoff:  time.Second,
	}
}

// WithoutCache disables the on-disk page cache.
func (c *Client) WithoutCache() *Client {
	c.useCache = false
	return c
}

// getWithRetries attempts an HTTP GET up to 3 times for 502/503/504 and
// network errors.
func (c *Client) getWithRetries(url string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "wolfscheduler/1.0")

		resp, err := c.httpClient.Do(req)
		switch {
		case err != nil:
			lastErr = err
		case resp.StatusCode == http.StatusBadGateway ||
			resp.StatusCode == http.StatusServiceUnavailable ||
			resp.StatusCode == http.StatusGatewayTimeout:
			resp.Body.Close()
			lastErr = fmt.Errorf("transient status code: %d", resp.StatusCode)
		default:
			return resp, nil
		}

		c.log.Warn().Err(lastErr).Int("attempt", attempt+1).Str("url", url).Msg("catalog fetch failed")
		if attempt < maxAttempts-1 {
			time.Sleep(time.Duration(attempt+1) * c.backoff)
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

// Fetch returns the body of the page at url, served from cache when fresh.
func (c *Client) Fetch(url string) ([]byte, error) {
	if c.useCache {
		if body, ok := readCache(url); ok {
			c.log.Debug().Str("url", url).Msg("catalog page served from cache")
			return body, nil
		}
	}

	resp, err := c.getWithRetries(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.useCache {
		writeCache(url, body)
	}
	return body, nil
}
