package kvstore

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by tests and the trip simulator.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string

	// FailWrites makes Set/Remove return an error, for exercising the
	// swallow-on-write-failure contract.
	FailWrites bool
	// FailReads makes Get report absent, for exercising read fallbacks.
	FailReads bool
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads {
		return "", false, errStoreUnavailable
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errStoreUnavailable
	}
	m.values[key] = value
	return nil
}

func (m *MemStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errStoreUnavailable
	}
	delete(m.values, key)
	return nil
}

// Len reports how many keys are stored.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

type storeError string

func (e storeError) Error() string { return string(e) }

const errStoreUnavailable = storeError("kv store unavailable")
