package fetcher

import (
	"context"
	"encoding/json"
)

// Source is a single upstream endpoint. Each source knows how to issue one
// request and hand back the decoded-but-untyped JSON payload so the caller can
// keep the raw body for observability and normalize it separately.
type Source interface {
	// Name identifies the upstream endpoint in logs and warnings.
	// Examples:
	//   - finnhub:earnings
	//   - finnhub:profile
	//   - marketaux:news
	Name() string

	// Fetch performs exactly one request. Implementations must honor ctx.
	Fetch(ctx context.Context) (json.RawMessage, error)
}

// Task pairs a caller-chosen identifier with the source to call. Tasks are
// created per orchestration round and discarded once the round completes.
type Task struct {
	ID     string
	Source Source
}
