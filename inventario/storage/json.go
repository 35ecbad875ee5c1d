package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// JSONBackend implements Backend using a single JSON file. A flock-based file
// lock guards against concurrent access from other processes, and an
// in-process lock manager serializes access from this one. Writes go through
// a temp file plus rename, so readers never observe a partially written file.
//
// Values must be valid JSON and are stored in compact form: a compact value
// round-trips through Set/Get byte for byte, an indented one comes back
// compacted.
type JSONBackend struct {
	filePath    string
	fileLock    *flock.Flock
	lockManager *LockManager
}

// fileData is the on-disk envelope.
type fileData struct {
	Entries  map[string]json.RawMessage `json:"entries"`
	Metadata Metadata                   `json:"metadata"`
}

// NewJSONBackend creates a backend persisting to filePath. The file is
// created lazily on the first write.
func NewJSONBackend(filePath string) *JSONBackend {
	return &JSONBackend{
		filePath:    filePath,
		fileLock:    flock.New(filePath + ".lock"),
		lockManager: NewLockManager(),
	}
}

func (b *JSONBackend) Get(key string) ([]byte, error) {
	var value []byte
	err := b.lockManager.Execute(ReadOperation, func() error {
		data, err := b.loadLocked()
		if err != nil {
			return err
		}
		raw, ok := data.Entries[key]
		if !ok {
			return ErrKeyNotFound
		}
		value = []byte(raw)
		return nil
	})
	return value, err
}

func (b *JSONBackend) Set(key string, value []byte) error {
	return b.Apply([]Op{{Key: key, Value: value}})
}

func (b *JSONBackend) Remove(key string) error {
	return b.lockManager.Execute(WriteOperation, func() error {
		data, err := b.loadLocked()
		if err != nil {
			return err
		}
		if _, ok := data.Entries[key]; !ok {
			return ErrKeyNotFound
		}
		delete(data.Entries, key)
		return b.saveLocked(data)
	})
}

func (b *JSONBackend) Keys(prefix string) ([]string, error) {
	var keys []string
	err := b.lockManager.Execute(ReadOperation, func() error {
		data, err := b.loadLocked()
		if err != nil {
			return err
		}
		for key := range data.Entries {
			if strings.HasPrefix(key, prefix) {
				keys = append(keys, key)
			}
		}
		return nil
	})
	return keys, err
}

// Apply performs the batch under the write lock with a single file write, so
// either every operation lands on disk or none does.
func (b *JSONBackend) Apply(ops []Op) error {
	return b.lockManager.Execute(WriteOperation, func() error {
		data, err := b.loadLocked()
		if err != nil {
			return err
		}
		for _, op := range ops {
			if op.Remove {
				delete(data.Entries, op.Key)
				continue
			}
			data.Entries[op.Key] = json.RawMessage(op.Value)
		}
		return b.saveLocked(data)
	})
}

// Close removes the lock file.
func (b *JSONBackend) Close() error {
	_ = os.Remove(b.filePath + ".lock")
	return nil
}

// acquireFileLock grabs the cross-process lock, retrying until lockTimeout.
func (b *JSONBackend) acquireFileLock() (release func(), err error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := b.fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = b.fileLock.Unlock() }, nil
}

// loadLocked reads the file while the in-process lock is held.
func (b *JSONBackend) loadLocked() (*fileData, error) {
	release, err := b.acquireFileLock()
	if err != nil {
		return nil, err
	}
	defer release()

	raw, err := os.ReadFile(b.filePath)
	if os.IsNotExist(err) || (err == nil && len(raw) == 0) {
		now := time.Now()
		return &fileData{
			Entries: map[string]json.RawMessage{},
			Metadata: Metadata{
				Version:   "1.0",
				CreatedAt: now,
				UpdatedAt: now,
			},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if data.Entries == nil {
		data.Entries = map[string]json.RawMessage{}
	}
	// The indented envelope reformats the entry bytes on disk; compact them
	// back so Get returns exactly what Set stored.
	for key, entry := range data.Entries {
		var buf bytes.Buffer
		if err := json.Compact(&buf, entry); err != nil {
			return nil, fmt.Errorf("failed to parse entry %s: %w", key, err)
		}
		data.Entries[key] = buf.Bytes()
	}
	return &data, nil
}

// saveLocked writes the file atomically while the in-process lock is held.
func (b *JSONBackend) saveLocked(data *fileData) error {
	release, err := b.acquireFileLock()
	if err != nil {
		return err
	}
	defer release()

	data.Metadata.UpdatedAt = time.Now()

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmpFile := b.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, raw, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, b.filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
