package kv

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// Memory keeps values in a map. Contents are lost when the process exits.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Name implements ports.HealthChecker.
func (m *Memory) Name() string { return "kv-memory" }

// HealthCheck implements ports.HealthChecker. The map is always available.
func (m *Memory) HealthCheck(context.Context) error { return nil }

// Get returns a copy of the value stored under key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	return slices.Clone(v), nil
}

// Set stores a copy of value under key.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = slices.Clone(value)
	return nil
}

// Close implements io.Closer.
func (m *Memory) Close() error { return nil }
