package kv

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value   []byte
	counter int64
	expires time.Time // zero means no expiry
}

// MemoryStore is the process-local fallback. State is lost on restart, which
// is acceptable for development and single-instance demos.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]memoryItem)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()

	if !ok || s.expired(it, key) {
		return nil, false, nil
	}
	out := make([]byte, len(it.value))
	copy(out, it.value)
	return out, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	it := memoryItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		it.expires = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[key]
	if ok && !it.expires.IsZero() && time.Now().After(it.expires) {
		ok = false
	}
	if !ok {
		it = memoryItem{}
		if ttl > 0 {
			it.expires = time.Now().Add(ttl)
		}
	}
	it.counter++
	s.items[key] = it
	return it.counter, nil
}

// expired lazily drops a stale entry on read.
func (s *MemoryStore) expired(it memoryItem, key string) bool {
	if it.expires.IsZero() || time.Now().Before(it.expires) {
		return false
	}
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return true
}
