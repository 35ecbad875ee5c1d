package storage_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario/storage"
)

// backends lists every Backend implementation under the same contract tests.
func backends(t *testing.T) map[string]storage.Backend {
	t.Helper()
	jsonPath := filepath.Join(t.TempDir(), "datos.json")
	m := map[string]storage.Backend{
		"Memory": storage.NewMemoryBackend(),
		"JSON":   storage.NewJSONBackend(jsonPath),
	}
	for _, b := range m {
		backend := b
		t.Cleanup(func() { _ = backend.Close() })
	}
	return m
}

func TestBackendContract(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("GetAbsentKey", func(t *testing.T) {
				if _, err := backend.Get("ausente"); !errors.Is(err, storage.ErrKeyNotFound) {
					t.Errorf("expected ErrKeyNotFound, got %v", err)
				}
			})

			t.Run("SetGetRoundTrip", func(t *testing.T) {
				if err := backend.Set("clave", []byte(`{"n":1}`)); err != nil {
					t.Fatalf("Set failed: %v", err)
				}
				got, err := backend.Get("clave")
				if err != nil {
					t.Fatalf("Get failed: %v", err)
				}
				if string(got) != `{"n":1}` {
					t.Errorf("got %q", got)
				}
			})

			t.Run("SetOverwrites", func(t *testing.T) {
				if err := backend.Set("clave", []byte(`{"n":2}`)); err != nil {
					t.Fatalf("Set failed: %v", err)
				}
				got, _ := backend.Get("clave")
				if string(got) != `{"n":2}` {
					t.Errorf("got %q", got)
				}
			})

			t.Run("Remove", func(t *testing.T) {
				if err := backend.Remove("clave"); err != nil {
					t.Fatalf("Remove failed: %v", err)
				}
				if _, err := backend.Get("clave"); !errors.Is(err, storage.ErrKeyNotFound) {
					t.Errorf("expected ErrKeyNotFound after Remove, got %v", err)
				}
				if err := backend.Remove("clave"); !errors.Is(err, storage.ErrKeyNotFound) {
					t.Errorf("expected ErrKeyNotFound on second Remove, got %v", err)
				}
			})

			t.Run("KeysByPrefix", func(t *testing.T) {
				_ = backend.Set("sushi:productos", []byte(`[]`))
				_ = backend.Set("sushi:categorias", []byte(`[]`))
				_ = backend.Set("otro:productos", []byte(`[]`))

				keys, err := backend.Keys("sushi:")
				if err != nil {
					t.Fatalf("Keys failed: %v", err)
				}
				sort.Strings(keys)
				want := []string{"sushi:categorias", "sushi:productos"}
				if len(keys) != 2 || keys[0] != want[0] || keys[1] != want[1] {
					t.Errorf("Keys = %v, want %v", keys, want)
				}
			})

			t.Run("ApplyBatch", func(t *testing.T) {
				err := backend.Apply([]storage.Op{
					{Key: "a", Value: []byte(`1`)},
					{Key: "b", Value: []byte(`2`)},
					{Key: "otro:productos", Remove: true},
				})
				if err != nil {
					t.Fatalf("Apply failed: %v", err)
				}
				if got, _ := backend.Get("a"); string(got) != "1" {
					t.Errorf("a = %q", got)
				}
				if _, err := backend.Get("otro:productos"); !errors.Is(err, storage.ErrKeyNotFound) {
					t.Errorf("expected removed key to be gone, got %v", err)
				}
			})
		})
	}
}

func TestJSONBackendPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.json")

	primero := storage.NewJSONBackend(path)
	if err := primero.Set("clave", []byte(`"valor"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := primero.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// A fresh backend over the same file sees the data.
	segundo := storage.NewJSONBackend(path)
	defer func() { _ = segundo.Close() }()
	got, err := segundo.Get("clave")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `"valor"` {
		t.Errorf("got %q", got)
	}
}

func TestJSONBackendValueBytesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.json")
	backend := storage.NewJSONBackend(path)
	defer func() { _ = backend.Close() }()

	// The indented envelope on disk must not leak into the stored values.
	valor := `{"nombre":"Salmón Fresco","precio":32.75,"etiquetas":["pescados","fresco"]}`
	if err := backend.Set("producto", []byte(valor)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := backend.Get("producto")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != valor {
		t.Errorf("Get = %q, want the bytes Set stored %q", got, valor)
	}

	// Same bytes after a reopen over the persisted file.
	reabierto := storage.NewJSONBackend(path)
	defer func() { _ = reabierto.Close() }()
	got, err = reabierto.Get("producto")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != valor {
		t.Errorf("Get after reopen = %q, want %q", got, valor)
	}

	// Indented input is normalized to its compact form.
	if err := backend.Set("sangria", []byte("{\n  \"n\": 1\n}")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err = backend.Get("sangria")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"n":1}` {
		t.Errorf("Get = %q, want compacted %q", got, `{"n":1}`)
	}
}

func TestJSONBackendLazyFileCreation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.json")
	backend := storage.NewJSONBackend(path)
	defer func() { _ = backend.Close() }()

	// Reads against a missing file behave like an empty store.
	if _, err := backend.Get("clave"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no file after read-only access")
	}

	if err := backend.Set("clave", []byte(`1`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected the file after the first write: %v", err)
	}
}

func TestJSONBackendCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.json")
	if err := os.WriteFile(path, []byte("{no es json"), 0644); err != nil {
		t.Fatal(err)
	}
	backend := storage.NewJSONBackend(path)
	defer func() { _ = backend.Close() }()

	if _, err := backend.Get("clave"); err == nil || errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("expected a parse failure, got %v", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	backend := storage.NewMemoryBackend()
	defer func() { _ = backend.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = backend.Set(fmt.Sprintf("clave-%d", n), []byte(`1`))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = backend.Keys("clave-")
		}()
	}
	wg.Wait()

	keys, err := backend.Keys("clave-")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 20 {
		t.Errorf("expected 20 keys, got %d", len(keys))
	}
}
