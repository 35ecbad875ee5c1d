package inventario

import (
	"strconv"
	"strings"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario/validation"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

// Entity validators: static rule-table validation through the engine first,
// then the uniqueness checks that need a collection lookup. Uniqueness only
// runs once static validation has passed, so invalid input never costs a
// store read, and a collision replaces the result wholesale with the single
// field error.

// ValidateField exposes the engine's per-field check for callers validating
// raw input, e.g. on each form field change.
func (s *Store) ValidateField(name, value string) validation.FieldResult {
	return s.engine.ValidateField(name, value)
}

// ValidateForm exposes the engine's field-map check, including the
// cross-field rules.
func (s *Store) ValidateForm(fields map[string]string) validation.Result {
	return s.engine.ValidateForm(fields)
}

// ValidarProducto validates a product, then checks that its name is unique
// among the stored products, case-insensitively and excluding the record
// itself on update.
func (s *Store) ValidarProducto(p types.Producto) validation.Result {
	result := s.engine.ValidateForm(map[string]string{
		validation.CampoNombre:      p.Nombre,
		validation.CampoPrecio:      strconv.FormatFloat(p.Precio, 'f', -1, 64),
		validation.CampoStock:       strconv.Itoa(p.Stock),
		validation.CampoStockMinimo: strconv.Itoa(p.StockMinimo),
		validation.CampoDescripcion: p.Descripcion,
	})
	if !result.IsValid {
		return result
	}

	for _, existente := range s.GetProductos() {
		if existente.ID != p.ID && strings.EqualFold(existente.Nombre, p.Nombre) {
			return validation.SingleError(validation.CampoNombre, "Ya existe un producto con este nombre")
		}
	}
	return result
}

// ValidarUsuario validates a user, then checks that its email is unique
// among the stored users.
func (s *Store) ValidarUsuario(u types.Usuario) validation.Result {
	result := s.engine.ValidateForm(map[string]string{
		validation.CampoNombre: u.Nombre,
		validation.CampoEmail:  u.Email,
	})
	if !result.IsValid {
		return result
	}

	for _, existente := range s.GetUsuarios() {
		if existente.ID != u.ID && strings.EqualFold(existente.Email, u.Email) {
			return validation.SingleError(validation.CampoEmail, "Ya existe un usuario con este email")
		}
	}
	return result
}

// ValidarProveedor validates a supplier, then checks that its name is unique
// among the stored suppliers.
func (s *Store) ValidarProveedor(p types.Proveedor) validation.Result {
	result := s.engine.ValidateForm(map[string]string{
		validation.CampoNombre:   p.Nombre,
		validation.CampoEmail:    p.Email,
		validation.CampoTelefono: p.Telefono,
	})
	if !result.IsValid {
		return result
	}

	for _, existente := range s.GetProveedores() {
		if existente.ID != p.ID && strings.EqualFold(existente.Nombre, p.Nombre) {
			return validation.SingleError(validation.CampoNombre, "Ya existe un proveedor con este nombre")
		}
	}
	return result
}
