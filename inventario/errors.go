package inventario

import "errors"

// Sentinel errors returned by the CRUD helpers. Callers distinguish a missing
// record from a persistence failure with errors.Is; anything else wraps the
// underlying storage error.
var (
	// ErrNoEncontrado reports an update or delete against an id that is not
	// in the collection.
	ErrNoEncontrado = errors.New("inventario: registro no encontrado")

	// ErrUsuarioProtegido reports an attempt to delete the root admin
	// account (id 1). The check runs before touching the backend.
	ErrUsuarioProtegido = errors.New("inventario: el usuario administrador principal no puede eliminarse")
)
