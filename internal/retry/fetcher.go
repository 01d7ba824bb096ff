package retry

import (
	"context"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// Fetcher retries a wrapped mdconv.Fetcher through an Executor.
type Fetcher struct {
	next     mdconv.Fetcher
	executor *Executor
}

var _ mdconv.Fetcher = (*Fetcher)(nil)

// NewFetcher wraps next. Panics if either argument is nil.
func NewFetcher(next mdconv.Fetcher, executor *Executor) *Fetcher {
	if next == nil {
		panic("fetcher cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &Fetcher{next: next, executor: executor}
}

// Fetch implements mdconv.Fetcher.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := f.executor.Execute(ctx, func(ctx context.Context) error {
		var err error
		body, err = f.next.Fetch(ctx, url)
		return err
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
