package guard

import (
	"sync"

	"github.com/artblock/gallery-reconciler/internal/domain"
)

// AddressLocker serializes operations per gallery address. Keys are
// normalized so mixed-case addresses land on the same lock. Locks are never
// evicted; the set is bounded by the number of mirrored galleries.
type AddressLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAddressLocker creates an empty locker
func NewAddressLocker() *AddressLocker {
	return &AddressLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the lock for an address, blocking until it is free, and
// returns the release function. Callers must release on every path out.
func (l *AddressLocker) Lock(address string) func() {
	key := domain.NormalizeAddress(address)

	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
