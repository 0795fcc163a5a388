package news

import "context"

// Provider defines the interface for fetching recent headlines. Providers may
// be unavailable; callers decide how to degrade.
type Provider interface {
	Headlines(ctx context.Context, query string, limit int) ([]string, error)
	Name() string
}

// MockProvider returns fixed headlines for development and testing.
type MockProvider struct {
	Titles []string
	Err    error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Headlines(_ context.Context, _ string, limit int) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Titles) > limit {
		return m.Titles[:limit], nil
	}
	return m.Titles, nil
}
