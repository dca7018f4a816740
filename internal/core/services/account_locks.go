package services

import "sync"

// accountLocks serializes mutations per account id within this process.
// Entries are reference counted and dropped once no caller holds or waits on them.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*accountLock)}
}

// Lock blocks until accountID is free and returns the matching unlock func.
func (l *accountLocks) Lock(accountID string) func() {
	l.mu.Lock()
	lk, ok := l.locks[accountID]
	if !ok {
		lk = &accountLock{}
		l.locks[accountID] = lk
	}
	lk.refs++
	l.mu.Unlock()

	lk.mu.Lock()
	return func() {
		lk.mu.Unlock()
		l.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(l.locks, accountID)
		}
		l.mu.Unlock()
	}
}

func (l *accountLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
