// Package types defines the entity records persisted by the inventory store:
// the four collections (productos, categorias, proveedores, usuarios) and the
// configuration document, together with the patch types used for partial
// updates.
//
// Field names and JSON keys match the persisted layout, so a value written by
// any store instance round-trips unchanged through every other one.
package types

import "time"

// Rol is the access role assigned to a user account.
type Rol string

const (
	RolAdmin    Rol = "admin"
	RolUsuario  Rol = "usuario"
	RolInvitado Rol = "invitado"
)

// Estado values for categories and suppliers.
const (
	EstadoActiva   = "activa"
	EstadoInactiva = "inactiva"
)

// Estado values for users.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Producto is one inventory item. Proveedor is a nullable reference into the
// proveedores collection; Categoria references a category by its slug.
type Producto struct {
	ID                 int       `json:"id" yaml:"id"`
	Nombre             string    `json:"nombre" yaml:"nombre"`
	Categoria          string    `json:"categoria" yaml:"categoria"`
	Precio             float64   `json:"precio" yaml:"precio"`
	Stock              int       `json:"stock" yaml:"stock"`
	StockMinimo        int       `json:"stockMinimo" yaml:"stockMinimo"`
	Proveedor          *int      `json:"proveedor" yaml:"proveedor"`
	Descripcion        string    `json:"descripcion,omitempty" yaml:"descripcion,omitempty"`
	FechaCreacion      time.Time `json:"fechaCreacion,omitzero" yaml:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time `json:"fechaActualizacion,omitzero" yaml:"fechaActualizacion,omitempty"`
}

// Categoria groups products for display and reporting. Nothing enforces a
// referenced-by constraint: deleting a category leaves products pointing at
// the removed slug.
type Categoria struct {
	ID                 int       `json:"id" yaml:"id"`
	Nombre             string    `json:"nombre" yaml:"nombre"`
	Descripcion        string    `json:"descripcion,omitempty" yaml:"descripcion,omitempty"`
	Estado             string    `json:"estado" yaml:"estado"`
	FechaCreacion      time.Time `json:"fechaCreacion,omitzero" yaml:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time `json:"fechaActualizacion,omitzero" yaml:"fechaActualizacion,omitempty"`
}

// Proveedor is a supplier. Categorias holds the ids of the categories the
// supplier serves.
type Proveedor struct {
	ID                 int       `json:"id" yaml:"id"`
	Nombre             string    `json:"nombre" yaml:"nombre"`
	Contacto           string    `json:"contacto,omitempty" yaml:"contacto,omitempty"`
	Telefono           string    `json:"telefono,omitempty" yaml:"telefono,omitempty"`
	Email              string    `json:"email,omitempty" yaml:"email,omitempty"`
	Direccion          string    `json:"direccion,omitempty" yaml:"direccion,omitempty"`
	Estado             string    `json:"estado,omitempty" yaml:"estado,omitempty"`
	Notas              string    `json:"notas,omitempty" yaml:"notas,omitempty"`
	Categorias         []int     `json:"categorias,omitempty" yaml:"categorias,omitempty"`
	FechaCreacion      time.Time `json:"fechaCreacion,omitzero" yaml:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time `json:"fechaActualizacion,omitzero" yaml:"fechaActualizacion,omitempty"`
}

// Usuario is an account in the admin panel. ContrasenaHash is produced by the
// store's configured hasher; plain-text passwords are never persisted.
// The user with ID 1 is the root administrator and cannot be deleted.
type Usuario struct {
	ID                 int       `json:"id" yaml:"id"`
	Nombre             string    `json:"nombre" yaml:"nombre"`
	Email              string    `json:"email" yaml:"email"`
	Rol                Rol       `json:"rol" yaml:"rol"`
	Estado             string    `json:"estado" yaml:"estado"`
	Permisos           []string  `json:"permisos,omitempty" yaml:"permisos,omitempty"`
	ContrasenaHash     string    `json:"contrasenaHash,omitempty" yaml:"contrasenaHash,omitempty"`
	UltimoAcceso       time.Time `json:"ultimoAcceso,omitzero" yaml:"ultimoAcceso,omitempty"`
	FechaCreacion      time.Time `json:"fechaCreacion,omitzero" yaml:"fechaCreacion,omitempty"`
	FechaActualizacion time.Time `json:"fechaActualizacion,omitzero" yaml:"fechaActualizacion,omitempty"`
}

// ProductoPatch carries a partial product update. Nil fields keep the stored
// value (shallow merge). A nil Proveedor keeps the stored reference;
// QuitarProveedor clears it and wins over a non-nil Proveedor.
type ProductoPatch struct {
	Nombre          *string
	Categoria       *string
	Precio          *float64
	Stock           *int
	StockMinimo     *int
	Proveedor       *int
	QuitarProveedor bool
	Descripcion     *string
}

// CategoriaPatch carries a partial category update.
type CategoriaPatch struct {
	Nombre      *string
	Descripcion *string
	Estado      *string
}

// ProveedorPatch carries a partial supplier update.
type ProveedorPatch struct {
	Nombre     *string
	Contacto   *string
	Telefono   *string
	Email      *string
	Direccion  *string
	Estado     *string
	Notas      *string
	Categorias *[]int
}

// UsuarioPatch carries a partial user update. A non-nil Contrasena is hashed
// by the store before being written; the stored hash is kept otherwise.
type UsuarioPatch struct {
	Nombre       *string
	Email        *string
	Rol          *Rol
	Estado       *string
	Permisos     *[]string
	Contrasena   *string
	UltimoAcceso *time.Time
}
