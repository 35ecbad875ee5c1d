package inventario

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario/storage"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario/validation"
)

// DefaultNamespace prefixes every key this store writes, isolating its data
// from anything else sharing the same backend.
const DefaultNamespace = "sushihouse"

// Keys of the five collections/documents, relative to the namespace.
const (
	ClaveProductos     = "productos"
	ClaveCategorias    = "categorias"
	ClaveProveedores   = "proveedores"
	ClaveUsuarios      = "usuarios"
	ClaveConfiguracion = "configuracion"
)

// Store is the namespaced persistence layer over a storage backend. Every
// read goes back to the backend (no cross-call cache) and every mutator
// writes through synchronously, so the backend is always the single source
// of truth.
//
// Construct one per application with New and pass it to consumers; each test
// can build its own over an independent backend.
type Store struct {
	backend  storage.Backend
	ns       string
	logger   *slog.Logger
	hasher   Hasher
	engine   *validation.Engine
	semilla  Semilla
	timeFunc func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNamespace overrides the key prefix.
func WithNamespace(ns string) Option {
	return func(s *Store) { s.ns = ns }
}

// WithLogger sets the logger used for storage diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithHasher replaces the credential hasher (bcrypt by default).
func WithHasher(h Hasher) Option {
	return func(s *Store) { s.hasher = h }
}

// WithEngine replaces the validation engine, e.g. one extended via WithRule.
func WithEngine(e *validation.Engine) Option {
	return func(s *Store) { s.engine = e }
}

// WithSemilla replaces the seed data used by InitializeStorage.
func WithSemilla(sem Semilla) Option {
	return func(s *Store) { s.semilla = sem }
}

// WithTimeFunc sets a custom time source for deterministic timestamps in
// tests.
func WithTimeFunc(fn func() time.Time) Option {
	return func(s *Store) { s.timeFunc = fn }
}

// New creates a store over the given backend.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		ns:       DefaultNamespace,
		logger:   slog.Default(),
		hasher:   BcryptHasher{},
		engine:   validation.NewEngine(),
		semilla:  DefaultSemilla(),
		timeFunc: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromFile creates a store over a JSON file backend at path.
func NewFromFile(path string, opts ...Option) *Store {
	return New(storage.NewJSONBackend(path), opts...)
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) clave(key string) string {
	return s.ns + ":" + key
}

func (s *Store) now() time.Time {
	return s.timeFunc()
}

// Get deserializes the value stored under the namespaced key into dest.
// It returns false when the key is absent or the read fails; failures are
// logged, never raised.
func (s *Store) Get(key string, dest interface{}) bool {
	if err := s.getJSON(key, dest); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error("error al obtener del storage", "clave", key, "error", err)
		}
		return false
	}
	return true
}

// Set serializes v and writes it under the namespaced key. It returns false
// on failure (the diagnostic is logged) rather than propagating an error.
func (s *Store) Set(key string, v interface{}) bool {
	if err := s.setJSON(key, v); err != nil {
		s.logger.Error("error al guardar en el storage", "clave", key, "error", err)
		return false
	}
	return true
}

// Remove deletes the namespaced key. Removing an absent key is a no-op that
// still reports success, matching Set's write-oriented contract.
func (s *Store) Remove(key string) bool {
	err := s.backend.Remove(s.clave(key))
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Error("error al eliminar del storage", "clave", key, "error", err)
		return false
	}
	return true
}

// Clear removes every key under this store's namespace, leaving unrelated
// data in the backend untouched.
func (s *Store) Clear() bool {
	keys, err := s.backend.Keys(s.ns + ":")
	if err != nil {
		s.logger.Error("error al limpiar el storage", "error", err)
		return false
	}
	ops := make([]storage.Op, 0, len(keys))
	for _, key := range keys {
		ops = append(ops, storage.Op{Key: key, Remove: true})
	}
	if err := s.backend.Apply(ops); err != nil {
		s.logger.Error("error al limpiar el storage", "error", err)
		return false
	}
	return true
}

// InitializeStorage seeds each of the five collections/documents that is not
// already present, and guarantees at least the seed admin user exists even
// when the usuarios key holds an empty collection. Calling it again is a
// no-op over already-seeded data.
func (s *Store) InitializeStorage() bool {
	ok := true
	seed := map[string]interface{}{
		ClaveProductos:     s.semilla.Productos,
		ClaveCategorias:    s.semilla.Categorias,
		ClaveProveedores:   s.semilla.Proveedores,
		ClaveUsuarios:      s.semilla.Usuarios,
		ClaveConfiguracion: s.semilla.Configuracion,
	}
	for key, value := range seed {
		if s.existe(key) {
			continue
		}
		s.logger.Debug("sembrando datos por defecto", "clave", key)
		if !s.Set(key, value) {
			ok = false
		}
	}

	if usuarios := s.GetUsuarios(); len(usuarios) == 0 {
		if !s.SetUsuarios(s.semilla.AdminRespaldo()) {
			ok = false
		}
	}
	return ok
}

// ImportarDatos replaces the five collections/documents with the given data
// in one atomic batch. It backs the restore side of the backup tooling.
func (s *Store) ImportarDatos(datos Semilla) error {
	return s.aplicarLote(map[string]interface{}{
		ClaveProductos:     datos.Productos,
		ClaveCategorias:    datos.Categorias,
		ClaveProveedores:   datos.Proveedores,
		ClaveUsuarios:      datos.Usuarios,
		ClaveConfiguracion: datos.Configuracion,
	})
}

// ExportarDatos snapshots the five collections/documents.
func (s *Store) ExportarDatos() Semilla {
	return Semilla{
		Productos:     s.GetProductos(),
		Categorias:    s.GetCategorias(),
		Proveedores:   s.GetProveedores(),
		Usuarios:      s.GetUsuarios(),
		Configuracion: s.GetConfiguracion(),
	}
}

// existe reports whether the namespaced key is present, without decoding it.
func (s *Store) existe(key string) bool {
	_, err := s.backend.Get(s.clave(key))
	return err == nil
}

// getJSON reads and decodes a namespaced key. storage.ErrKeyNotFound is
// passed through so callers can tell absence from failure.
func (s *Store) getJSON(key string, dest interface{}) error {
	raw, err := s.backend.Get(s.clave(key))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("valor almacenado inválido: %w", err)
	}
	return nil
}

// setJSON encodes and writes a namespaced key.
func (s *Store) setJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("no se pudo serializar el valor: %w", err)
	}
	return s.backend.Set(s.clave(key), raw)
}

// aplicarLote encodes every value and writes the whole set as one atomic
// batch, so multi-entity mutations (e.g. supplier delete) cannot land
// half-applied.
func (s *Store) aplicarLote(valores map[string]interface{}) error {
	ops := make([]storage.Op, 0, len(valores))
	for key, v := range valores {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("no se pudo serializar %s: %w", key, err)
		}
		ops = append(ops, storage.Op{Key: s.clave(key), Value: raw})
	}
	return s.backend.Apply(ops)
}

// coincide reports a case-insensitive substring match.
func coincide(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
