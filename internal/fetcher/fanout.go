package fetcher

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/iter"
)

// FetchAll runs every task concurrently and returns one Result per task, in
// task order, regardless of completion order.
//
// Each task gets its own deadline of perTaskTimeout (no deadline when <= 0).
// A failing or slow task never cancels its siblings: its failure is captured
// in its Result and the round carries on. FetchAll returns once every task has
// either finished or hit its own deadline. There are no retries.
func FetchAll(ctx context.Context, tasks []Task, perTaskTimeout time.Duration) []Result {
	if len(tasks) == 0 {
		return nil
	}

	// Workers block on their source, so every task gets its own goroutine
	// regardless of GOMAXPROCS.
	mapper := iter.Mapper[Task, Result]{MaxGoroutines: len(tasks)}
	return mapper.Map(tasks, func(t *Task) Result {
		return runTask(ctx, *t, perTaskTimeout)
	})
}

func runTask(ctx context.Context, t Task, timeout time.Duration) Result {
	taskCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// Buffered so a source that ignores its context can still finish and exit.
	done := make(chan Result, 1)
	go func() {
		value, err := t.Source.Fetch(taskCtx)
		if err != nil {
			done <- Failure(t.ID, classify(taskCtx, err))
			return
		}
		done <- Success(t.ID, value)
	}()

	select {
	case r := <-done:
		return r
	case <-taskCtx.Done():
		return Failure(t.ID, ClassifyTransportError(taskCtx.Err()))
	}
}

// classify makes sure a deadline hit surfaces as KindTimeout even when the
// source wrapped the context error in something else.
func classify(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded && KindOf(err) != KindTimeout {
		return NewTimeoutError(err)
	}
	if KindOf(err) == "" {
		return ClassifyTransportError(err)
	}
	return err
}
