package service

import "sync"

// keyedMutex hands out one mutex per key. Settlement and entry admission
// for a season must not interleave within the process: both are
// read-check-write sequences over a store with no transactions, and
// concurrent settlement triggers would otherwise credit rewards twice.
// Mutexes are never evicted; season keys are low-cardinality.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock blocks until the key's mutex is held and returns the unlock func.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
