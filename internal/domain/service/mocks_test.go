package service_test

import (
	"context"
	"sync"
)

type mockBlacklist struct {
	mu      sync.Mutex
	entries map[string]string
	err     error
	calls   []string
}

func (m *mockBlacklist) Lookup(_ context.Context, target string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, target)
	if m.err != nil {
		return "", false, m.err
	}
	reason, ok := m.entries[target]
	return reason, ok, nil
}

func (m *mockBlacklist) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

type mockFeed struct {
	lookupFn func(ctx context.Context, rawURL string) (string, error)
}

func (m *mockFeed) Lookup(ctx context.Context, rawURL string) (string, error) {
	return m.lookupFn(ctx, rawURL)
}
