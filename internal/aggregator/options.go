// Package aggregator composes the cache, the fan-out fetcher and the quality
// gate into one read-through Get per request family.
package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"marketscout/internal/cache"
	"marketscout/internal/fetcher"
)

const (
	DefaultTaskTimeout    = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Options tune every orchestrator. Zero values select the defaults.
type Options struct {
	// TaskTimeout bounds each upstream call in a fan-out round.
	TaskTimeout time.Duration
	// RequestTimeout bounds a whole Get call.
	RequestTimeout time.Duration
	Logger         *slog.Logger
	Now            func() time.Time
}

func (o Options) withDefaults() Options {
	if o.TaskTimeout <= 0 {
		o.TaskTimeout = DefaultTaskTimeout
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = DefaultRequestTimeout
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// withDeadline runs fn under a deadline of timeout. When the deadline passes
// first the call is abandoned and a timeout *Error is returned; fn keeps
// running in the background until its context cancellation reaches it.
func withDeadline[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := fn(ctx)
		done <- outcome{v, err}
	}()

	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		var zero T
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, &Error{Kind: KindTimeout, Err: ctx.Err()}
		}
		return zero, ctx.Err()
	}
}

// fetchOne runs a single required source through the fan-out fetcher and
// escalates its failure.
func fetchOne(ctx context.Context, id string, src fetcher.Source, timeout time.Duration) (json.RawMessage, error) {
	results := fetcher.FetchAll(ctx, []fetcher.Task{{ID: id, Source: src}}, timeout)
	r := results[0]
	if !r.OK() {
		return nil, upstreamFailure(id, r.Err)
	}
	return r.Value, nil
}

func store(c *cache.Cache, logger *slog.Logger, class cache.Class, key string, payload any) {
	if err := c.Store(class, key, payload); err != nil {
		logger.Warn("cache store failed", "class", class, "key", key, "error", err)
		return
	}
	logger.Debug("cached", "class", class, "key", key)
}
