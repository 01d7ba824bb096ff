package retry

import (
	"math"
	"math/rand"
	"time"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// ExponentialBackoff implements mdconv.BackoffStrategy with exponential
// growth, a delay cap and symmetric jitter.
type ExponentialBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	maxAttempts  int     // -1 unlimited, 0 no retries
	jitter       float64 // 0.1 means +/- 10%

	// jitterFunc returns values in [0, 1). Nil means math/rand.
	jitterFunc func() float64
}

var _ mdconv.BackoffStrategy = (*ExponentialBackoff)(nil)

// BackoffOption configures an ExponentialBackoff.
type BackoffOption func(*ExponentialBackoff)

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.initialDelay = d
	}
}

// WithMaxDelay caps the delay between retries.
func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.maxDelay = d
	}
}

// WithMultiplier sets the growth factor between retries.
func WithMultiplier(m float64) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.multiplier = m
	}
}

// WithJitter sets the jitter factor in [0, 1].
func WithJitter(j float64) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.jitter = j
	}
}

// WithJitterFunc replaces the random source used for jitter.
func WithJitterFunc(f func() float64) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.jitterFunc = f
	}
}

// NewExponentialBackoff creates a strategy allowing maxAttempts retries,
// starting at mdconv.DefaultRetryInitialDelay and capped at
// mdconv.DefaultRetryMaxDelay.
func NewExponentialBackoff(maxAttempts int, opts ...BackoffOption) *ExponentialBackoff {
	b := &ExponentialBackoff{
		initialDelay: mdconv.DefaultRetryInitialDelay,
		maxDelay:     mdconv.DefaultRetryMaxDelay,
		multiplier:   2.0,
		maxAttempts:  maxAttempts,
		jitter:       0.1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NextDelay returns initialDelay * multiplier^attempt, capped and jittered.
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	delayMs := float64(b.initialDelay.Milliseconds()) * math.Pow(b.multiplier, float64(attempt))
	if limit := float64(b.maxDelay.Milliseconds()); delayMs > limit {
		delayMs = limit
	}

	if b.jitter > 0 {
		random := b.jitterFunc
		if random == nil {
			random = rand.Float64
		}
		// map [0,1) onto [-1,1)
		delayMs *= 1.0 + b.jitter*(random()-0.5)*2.0
	}

	return time.Duration(delayMs) * time.Millisecond
}

// MaxAttempts returns the number of retries allowed.
func (b *ExponentialBackoff) MaxAttempts() int { return b.maxAttempts }

// InitialDelay returns the delay before the first retry.
func (b *ExponentialBackoff) InitialDelay() time.Duration { return b.initialDelay }

// MaxDelay returns the delay cap.
func (b *ExponentialBackoff) MaxDelay() time.Duration { return b.maxDelay }

// Multiplier returns the growth factor.
func (b *ExponentialBackoff) Multiplier() float64 { return b.multiplier }

// Jitter returns the jitter factor.
func (b *ExponentialBackoff) Jitter() float64 { return b.jitter }
