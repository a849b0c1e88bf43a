package service

import (
	"sync"

	"github.com/google/uuid"
)

// UserLocks serializes mutating operations per user. Every state transition
// is a read-modify-write over one user's records, so holding that user's lock
// across the whole operation preserves the idempotency, streak-continuity and
// at-most-once-badge invariants under concurrent requests.
type UserLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Lock blocks until the user's lock is held and returns the unlock func.
func (ul *UserLocks) Lock(uid uuid.UUID) func() {
	ul.mu.Lock()
	l, ok := ul.locks[uid]
	if !ok {
		l = &sync.Mutex{}
		ul.locks[uid] = l
	}
	ul.mu.Unlock()
	l.Lock()
	return l.Unlock
}
