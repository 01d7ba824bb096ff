// Package retry retries schema downloads that fail for transient reasons.
//
// The core packages never retry; the CLI wraps its fetcher instead:
//
//	strategy := retry.NewExponentialBackoff(cfg.Fetch.Retries)
//	executor := retry.NewExecutor(retry.NewHTTPErrorClassifier(), strategy)
//	fetcher := retry.NewFetcher(fetch.New(fetchCfg), executor)
//
// HTTPErrorClassifier treats network failures, 5xx responses and 429 as
// transient. Everything else, including context cancellation, stops the loop.
package retry
