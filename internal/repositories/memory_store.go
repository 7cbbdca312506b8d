package repositories

import (
	"context"
	"sync"
)

// MemoryRecordStore keeps records in process memory. It backs the
// STORE_DRIVER=memory mode and the tests.
type MemoryRecordStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{records: make(map[string][]byte)}
}

func (m *MemoryRecordStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (m *MemoryRecordStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = append([]byte(nil), value...)
	return nil
}

// Keys returns the number of stored keys.
func (m *MemoryRecordStore) Keys() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
