package mdconv

import "time"

// ErrorClassifier decides whether a failed Fetch is worth repeating.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// BackoffStrategy spaces out repeated fetch attempts.
type BackoffStrategy interface {
	// NextDelay returns the wait before retry number attempt (zero-indexed).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the number of retries allowed: 0 none, -1 unlimited.
	MaxAttempts() int
}
