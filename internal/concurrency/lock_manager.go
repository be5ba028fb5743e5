package concurrency

import (
	"sync"
)

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// LockManager handles named locks. An entry lives only while some caller
// holds or waits on it.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*lockEntry)}
}

// Lock blocks until the named lock is held and returns its release func
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	entry, ok := lm.locks[key]
	if !ok {
		entry = &lockEntry{}
		lm.locks[key] = entry
	}
	entry.refs++
	lm.mu.Unlock()

	entry.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.mu.Unlock()

			lm.mu.Lock()
			entry.refs--
			if entry.refs == 0 {
				delete(lm.locks, key)
			}
			lm.mu.Unlock()
		})
	}
}

// WithLock runs fn while holding the named lock
func (lm *LockManager) WithLock(key string, fn func() error) error {
	unlock := lm.Lock(key)
	defer unlock()
	return fn()
}

// Len reports how many named locks are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
