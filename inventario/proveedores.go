package inventario

import (
	"fmt"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

// GetProveedores returns the supplier collection, or an empty slice when the
// key is absent.
func (s *Store) GetProveedores() []types.Proveedor {
	var proveedores []types.Proveedor
	if !s.Get(ClaveProveedores, &proveedores) || proveedores == nil {
		return []types.Proveedor{}
	}
	return proveedores
}

// SetProveedores replaces the whole supplier collection.
func (s *Store) SetProveedores(proveedores []types.Proveedor) bool {
	return s.Set(ClaveProveedores, proveedores)
}

// AgregarProveedor assigns the next id, stamps the creation time and persists
// the supplier.
func (s *Store) AgregarProveedor(p types.Proveedor) (types.Proveedor, error) {
	proveedores := s.GetProveedores()
	p.ID = siguienteID(proveedores, func(p types.Proveedor) int { return p.ID })
	p.FechaCreacion = s.now()
	if p.Estado == "" {
		p.Estado = types.EstadoActiva
	}
	proveedores = append(proveedores, p)
	if err := s.setJSON(ClaveProveedores, proveedores); err != nil {
		return types.Proveedor{}, fmt.Errorf("no se pudo guardar el proveedor: %w", err)
	}
	return p, nil
}

// ActualizarProveedor shallow-merges the patch over the stored record.
func (s *Store) ActualizarProveedor(id int, patch types.ProveedorPatch) error {
	proveedores := s.GetProveedores()
	for i := range proveedores {
		if proveedores[i].ID != id {
			continue
		}
		p := &proveedores[i]
		if patch.Nombre != nil {
			p.Nombre = *patch.Nombre
		}
		if patch.Contacto != nil {
			p.Contacto = *patch.Contacto
		}
		if patch.Telefono != nil {
			p.Telefono = *patch.Telefono
		}
		if patch.Email != nil {
			p.Email = *patch.Email
		}
		if patch.Direccion != nil {
			p.Direccion = *patch.Direccion
		}
		if patch.Estado != nil {
			p.Estado = *patch.Estado
		}
		if patch.Notas != nil {
			p.Notas = *patch.Notas
		}
		if patch.Categorias != nil {
			p.Categorias = *patch.Categorias
		}
		p.FechaActualizacion = s.now()
		if err := s.setJSON(ClaveProveedores, proveedores); err != nil {
			return fmt.Errorf("no se pudo guardar el proveedor: %w", err)
		}
		return nil
	}
	return ErrNoEncontrado
}

// EliminarProveedor removes the supplier and nulls out the reference on every
// product that pointed at it. Both collections are written in one atomic
// batch, so a failure cannot leave products referencing a half-deleted
// supplier.
func (s *Store) EliminarProveedor(id int) error {
	proveedores := s.GetProveedores()
	restantes := make([]types.Proveedor, 0, len(proveedores))
	for _, p := range proveedores {
		if p.ID != id {
			restantes = append(restantes, p)
		}
	}
	if len(restantes) == len(proveedores) {
		return ErrNoEncontrado
	}

	productos := s.GetProductos()
	for i := range productos {
		if productos[i].Proveedor != nil && *productos[i].Proveedor == id {
			productos[i].Proveedor = nil
		}
	}

	err := s.aplicarLote(map[string]interface{}{
		ClaveProveedores: restantes,
		ClaveProductos:   productos,
	})
	if err != nil {
		return fmt.Errorf("no se pudo eliminar el proveedor: %w", err)
	}
	return nil
}

// BuscarProveedores returns the suppliers whose name, contact or email
// contains the term, case-insensitively. An empty term returns all.
func (s *Store) BuscarProveedores(termino string) []types.Proveedor {
	proveedores := s.GetProveedores()
	if termino == "" {
		return proveedores
	}
	resultado := make([]types.Proveedor, 0, len(proveedores))
	for _, p := range proveedores {
		if coincide(p.Nombre, termino) || coincide(p.Contacto, termino) || coincide(p.Email, termino) {
			resultado = append(resultado, p)
		}
	}
	return resultado
}
