// Package fetch retrieves remote schema documents over HTTP.
//
// HTTPFetcher implements mdconv.Fetcher with a per-request timeout, a fixed
// User-Agent, optional extra headers and a token bucket rate limit shared by
// every call on the same fetcher. It performs a single attempt per call;
// retry policy belongs to the caller (see internal/retry).
package fetch
