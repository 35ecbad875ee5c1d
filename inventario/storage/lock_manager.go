package storage

import "sync"

// OperationType defines whether an operation is read or write, so the
// LockManager can pick the matching locking strategy: shared read locks for
// concurrent reads, an exclusive lock for writes.
type OperationType int

const (
	// ReadOperation indicates an operation that only reads data.
	ReadOperation OperationType = iota

	// WriteOperation indicates an operation that modifies data.
	WriteOperation
)

// LockManager centralizes in-process locking for backend operations. Keeping
// the lock/unlock pairing in one place avoids the deadlock-prone
// lock/unlock/relock patterns that show up when every method manages the
// mutex itself.
type LockManager struct {
	mu *sync.RWMutex
}

// NewLockManager returns a ready-to-use lock manager.
func NewLockManager() *LockManager {
	return &LockManager{mu: &sync.RWMutex{}}
}

// Execute runs fn under the lock matching the operation type. The lock is
// released via defer, so it is freed even if fn panics.
func (lm *LockManager) Execute(opType OperationType, fn func() error) error {
	switch opType {
	case ReadOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case WriteOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
