package store

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in a map. Nothing survives the process.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	// Saves counts successful Save calls per key.
	Saves map[string]int
	// FailSave, when set, is returned by every Save.
	FailSave error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
		Saves: make(map[string]int),
	}
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[key]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return append([]byte(nil), blob...), nil
}

func (m *MemoryStore) Save(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave != nil {
		return m.FailSave
	}
	m.blobs[key] = append([]byte(nil), blob...)
	m.Saves[key]++
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
