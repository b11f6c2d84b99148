package testutil

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"marketscout/internal/fetcher"
)

// MockSource is a mock implementation of the fetcher.Source interface for testing
type MockSource struct {
	FetchFunc func(ctx context.Context) (json.RawMessage, error)
	NameFunc  func() string

	calls atomic.Int64
}

// Fetch implements the fetcher.Source interface
func (m *MockSource) Fetch(ctx context.Context) (json.RawMessage, error) {
	m.calls.Add(1)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return json.RawMessage(`{}`), nil
}

// Name implements the fetcher.Source interface
func (m *MockSource) Name() string {
	if m.NameFunc != nil {
		return m.NameFunc()
	}
	return "mock:source"
}

// Calls reports how many times Fetch was invoked
func (m *MockSource) Calls() int {
	return int(m.calls.Load())
}

// NewMockSource creates a simple mock source with a predefined payload
func NewMockSource(name, payload string, err error) *MockSource {
	return &MockSource{
		FetchFunc: func(ctx context.Context) (json.RawMessage, error) {
			if err != nil {
				return nil, err
			}
			return json.RawMessage(payload), nil
		},
		NameFunc: func() string {
			return name
		},
	}
}

var _ fetcher.Source = (*MockSource)(nil)
