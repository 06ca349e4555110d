// Package view provides race-free update semantics for filter-driven
// dashboard views. Each view owns a Fetcher; every filter change issues a new
// fetch carrying a monotonically increasing generation, and a response is
// applied only if it is still the most recent one issued. A superseded
// fetch's context is cancelled, so in-flight repository calls stop early
// instead of overwriting newer state on arrival.
package view

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned when a fetch completed after a newer one was issued
// for the same view. Its result was discarded, not applied.
var ErrStale = errors.New("view: stale fetch superseded by a newer one")

// Fetcher serializes the apply step of overlapping fetches for one view.
type Fetcher[T any] struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewFetcher constructs a Fetcher.
func NewFetcher[T any]() *Fetcher[T] {
	return &Fetcher[T]{}
}

// Fetch runs load and, if no newer fetch was issued meanwhile, hands the
// result to apply. Issuing a fetch cancels the context of the previous one.
// The load call itself runs outside the lock, so overlapping fetches proceed
// concurrently; only apply is serialized.
func (f *Fetcher[T]) Fetch(ctx context.Context, load func(context.Context) (T, error), apply func(T)) error {
	ctx, gen := f.issue(ctx)

	result, err := load(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return ErrStale
	}
	apply(result)
	return nil
}

// issue registers a new fetch generation and cancels the previous one.
func (f *Fetcher[T]) issue(parent context.Context) (context.Context, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	f.cancel = cancel
	f.gen++
	return ctx, f.gen
}

// Cancel aborts the in-flight fetch, if any, without issuing a new one. Used
// when the view is torn down.
func (f *Fetcher[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.gen++
}
