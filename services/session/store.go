package session

import (
	"context"
	"sync"
)

// Store is the client-local key-value storage of each browser session.
// Implementations return "" for absent keys.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID string, values map[string]string) error
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[sessionID][key], nil
}

func (m *MemoryStore) Set(_ context.Context, sessionID string, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kv, ok := m.data[sessionID]
	if !ok {
		kv = make(map[string]string, len(values))
		m.data[sessionID] = kv
	}
	for k, v := range values {
		kv[k] = v
	}
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.data, sessionID)
	m.mu.Unlock()
	return nil
}
