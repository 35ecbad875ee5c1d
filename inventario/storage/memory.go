package storage

import "strings"

// MemoryBackend implements Backend with an in-process map. It gives tests an
// isolated store per instance and serves setups that do not need durability.
type MemoryBackend struct {
	lockManager *LockManager
	entries     map[string][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		lockManager: NewLockManager(),
		entries:     map[string][]byte{},
	}
}

func (b *MemoryBackend) Get(key string) ([]byte, error) {
	var value []byte
	err := b.lockManager.Execute(ReadOperation, func() error {
		raw, ok := b.entries[key]
		if !ok {
			return ErrKeyNotFound
		}
		value = append([]byte(nil), raw...)
		return nil
	})
	return value, err
}

func (b *MemoryBackend) Set(key string, value []byte) error {
	return b.Apply([]Op{{Key: key, Value: value}})
}

func (b *MemoryBackend) Remove(key string) error {
	return b.lockManager.Execute(WriteOperation, func() error {
		if _, ok := b.entries[key]; !ok {
			return ErrKeyNotFound
		}
		delete(b.entries, key)
		return nil
	})
}

func (b *MemoryBackend) Keys(prefix string) ([]string, error) {
	var keys []string
	err := b.lockManager.Execute(ReadOperation, func() error {
		for key := range b.entries {
			if strings.HasPrefix(key, prefix) {
				keys = append(keys, key)
			}
		}
		return nil
	})
	return keys, err
}

func (b *MemoryBackend) Apply(ops []Op) error {
	return b.lockManager.Execute(WriteOperation, func() error {
		for _, op := range ops {
			if op.Remove {
				delete(b.entries, op.Key)
				continue
			}
			b.entries[op.Key] = append([]byte(nil), op.Value...)
		}
		return nil
	})
}

func (b *MemoryBackend) Close() error { return nil }
