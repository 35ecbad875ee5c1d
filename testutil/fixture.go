// Package testutil provides seeded store fixtures for tests. Every fixture
// builds its own backend, so tests stay isolated from each other.
package testutil

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario/storage"
)

// FechaFija is the deterministic timestamp fixtures stamp on writes.
var FechaFija = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// HasherPlano marks passwords instead of hashing them, so user tests do not
// pay bcrypt cost. Never use it outside tests.
type HasherPlano struct{}

func (HasherPlano) Hash(contrasena string) (string, error) { return "plano:" + contrasena, nil }

func (HasherPlano) Verify(hash, contrasena string) bool { return hash == "plano:"+contrasena }

// opciones returns the common fixture options: silent logger, fixed clock,
// and a cheap hasher so user tests do not pay bcrypt cost.
func opciones(extra ...inventario.Option) []inventario.Option {
	opts := []inventario.Option{
		inventario.WithLogger(slog.New(slog.DiscardHandler)),
		inventario.WithTimeFunc(func() time.Time { return FechaFija }),
		inventario.WithHasher(HasherPlano{}),
	}
	return append(opts, extra...)
}

// NuevaTienda returns an empty store over an isolated in-memory backend.
func NuevaTienda(t *testing.T, extra ...inventario.Option) *inventario.Store {
	t.Helper()
	s := inventario.New(storage.NewMemoryBackend(), opciones(extra...)...)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// NuevaTiendaSembrada returns an in-memory store with the default seed
// catalog loaded.
func NuevaTiendaSembrada(t *testing.T, extra ...inventario.Option) *inventario.Store {
	t.Helper()
	s := NuevaTienda(t, extra...)
	if !s.InitializeStorage() {
		t.Fatal("no se pudo sembrar la tienda")
	}
	return s
}

// NuevaTiendaArchivo returns an empty store persisting to a JSON file inside
// a per-test temporary directory.
func NuevaTiendaArchivo(t *testing.T, extra ...inventario.Option) *inventario.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventario.json")
	s := inventario.NewFromFile(path, opciones(extra...)...)
	t.Cleanup(func() { _ = s.Close() })
	return s
}
