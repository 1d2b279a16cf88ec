// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests with a bounded per-request timeout,
// used to download embedded post media.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/noorkhafidzin/blogger2hugo/core"
)

const defaultUserAgent = "blogger2hugo/1.0 (https://github.com/noorkhafidzin/blogger2hugo)"

// HTTPFetcher fetches remote assets via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher. The timeout bounds each individual request;
// a non-positive timeout falls back to the default.
func New(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = core.DefaultFetchTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the full body of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
