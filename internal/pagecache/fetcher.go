package pagecache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrFetch marks a network retrieval failure. Callers classify with
// errors.Is; the wrapped error carries the transport detail.
var ErrFetch = errors.New("fetch failed")

// Fetcher retrieves the raw content of a URL. Implementations must honor
// context cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches pages over HTTP with a bounded timeout and response
// size.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// NewHTTPFetcher builds a fetcher with the given per-request timeout,
// response size limit, and User-Agent header value.
func NewHTTPFetcher(timeout time.Duration, maxBytes int64, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		maxBytes:  maxBytes,
	}
}

// Fetch performs a blocking GET and returns the body. Any transport
// failure, non-2xx status, or oversized body wraps ErrFetch.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %q: %w", ErrFetch, url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %q: %w", ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: get %q: unexpected status %s", ErrFetch, url, resp.Status)
	}

	limit := f.maxBytes
	if limit <= 0 {
		limit = 10_000_000
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body of %q: %w", ErrFetch, url, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: body of %q exceeds %d bytes", ErrFetch, url, limit)
	}
	return body, nil
}
