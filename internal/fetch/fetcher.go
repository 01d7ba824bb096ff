package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// maxBodySize caps a downloaded schema document.
const maxBodySize = 16 << 20

// Config configures an HTTPFetcher.
type Config struct {
	// Timeout for a single request (default mdconv.DefaultFetchTimeout).
	Timeout time.Duration

	// UserAgent header value (default mdconv.DefaultUserAgent).
	UserAgent string

	// RateLimit in requests per second (default mdconv.DefaultRateLimit).
	RateLimit float64

	// RateBurst is the maximum burst size (default mdconv.DefaultRateBurst).
	RateBurst int

	// Headers are added to every request.
	Headers map[string]string

	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:   mdconv.DefaultFetchTimeout,
		UserAgent: mdconv.DefaultUserAgent,
		RateLimit: mdconv.DefaultRateLimit,
		RateBurst: mdconv.DefaultRateBurst,
	}
}

// HTTPFetcher downloads documents with a rate limited HTTP client.
// Safe for concurrent use.
type HTTPFetcher struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
}

var _ mdconv.Fetcher = (*HTTPFetcher)(nil)

// New creates an HTTPFetcher. Zero fields in cfg take their defaults.
func New(cfg Config) *HTTPFetcher {
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = def.RateLimit
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = def.RateBurst
	}

	return &HTTPFetcher{
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// Fetch issues a GET for url and returns the response body.
// Any status outside 2xx is reported as an *Error carrying the status code.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("rate limiter: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	for k, v := range f.cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxBodySize {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("response exceeds %d bytes", maxBodySize)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return body, nil
}
