package llm

import (
	"context"
	"sync"
)

// MockClient is a test double whose behavior is supplied per test. It is
// safe for concurrent use; orchestration code fans calls out in parallel.
type MockClient struct {
	ModelName    string
	CompleteFunc func(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	mu       sync.Mutex
	requests []CompletionRequest
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return &CompletionResponse{Content: "{}", StopReason: "stop"}, nil
}

func (m *MockClient) Model() string {
	if m.ModelName != "" {
		return m.ModelName
	}
	return "mock"
}

// Requests returns a copy of every request seen so far.
func (m *MockClient) Requests() []CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CompletionRequest, len(m.requests))
	copy(out, m.requests)
	return out
}
