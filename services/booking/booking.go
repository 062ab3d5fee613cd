package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"therewecome/utils"

	"github.com/go-redis/redis/v8"
)

// RedisStateStore caches wizard state as JSON under the wizard prefix.
// Every save refreshes the TTL.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: ttl}
}

// Load returns the stored state, or a fresh one when nothing is cached or
// the entry expired.
func (s *RedisStateStore) Load(ctx context.Context, sessionID string) (State, error) {
	data, err := s.client.Get(ctx, utils.WizardPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to load booking wizard: %w", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("failed to parse booking wizard: %w", err)
	}
	return st, nil
}

func (s *RedisStateStore) Save(ctx context.Context, sessionID string, st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal booking wizard: %w", err)
	}
	if err := s.client.Set(ctx, utils.WizardPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking wizard: %w", err)
	}
	return nil
}

func (s *RedisStateStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, utils.WizardPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking wizard: %w", err)
	}
	return nil
}

// MemoryStateStore keeps wizard state in process. States round-trip through
// JSON so callers never share slices with the store.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string][]byte
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string][]byte)}
}

func (m *MemoryStateStore) Load(_ context.Context, sessionID string) (State, error) {
	m.mu.Lock()
	data, ok := m.states[sessionID]
	m.mu.Unlock()
	if !ok {
		return State{}, nil
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, err
	}
	return st, nil
}

func (m *MemoryStateStore) Save(_ context.Context, sessionID string, st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.states[sessionID] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStateStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.states, sessionID)
	m.mu.Unlock()
	return nil
}
