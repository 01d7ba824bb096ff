package retry

import (
	"context"
	"time"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// Executor runs an operation until it succeeds, fails fatally or runs out of
// attempts. Safe for concurrent use; WithOnRetry returns a copy.
type Executor struct {
	classifier mdconv.ErrorClassifier
	strategy   mdconv.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor with the given configuration.
// Panics if classifier or strategy is nil.
func NewExecutor(
	classifier mdconv.ErrorClassifier,
	strategy mdconv.BackoffStrategy,
) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// WithOnRetry returns a copy of e that calls callback before each retry.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs operation, retrying transient failures with backoff.
// It returns nil on success, otherwise the last error or the context error.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	maxAttempts := e.strategy.MaxAttempts()

	err := operation(ctx)
	// A negative maxAttempts retries until success, a fatal error or ctx ends.
	for attempt := 0; err != nil && e.classifier.IsTransient(err); attempt++ {
		if maxAttempts >= 0 && attempt >= maxAttempts {
			break
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		err = operation(ctx)
	}
	return err
}
