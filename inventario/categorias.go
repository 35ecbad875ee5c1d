package inventario

import (
	"fmt"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

// GetCategorias returns the category collection, or an empty slice when the
// key is absent.
func (s *Store) GetCategorias() []types.Categoria {
	var categorias []types.Categoria
	if !s.Get(ClaveCategorias, &categorias) || categorias == nil {
		return []types.Categoria{}
	}
	return categorias
}

// SetCategorias replaces the whole category collection.
func (s *Store) SetCategorias(categorias []types.Categoria) bool {
	return s.Set(ClaveCategorias, categorias)
}

// AgregarCategoria assigns the next id, stamps the creation time and persists
// the category.
func (s *Store) AgregarCategoria(c types.Categoria) (types.Categoria, error) {
	categorias := s.GetCategorias()
	c.ID = siguienteID(categorias, func(c types.Categoria) int { return c.ID })
	c.FechaCreacion = s.now()
	if c.Estado == "" {
		c.Estado = types.EstadoActiva
	}
	categorias = append(categorias, c)
	if err := s.setJSON(ClaveCategorias, categorias); err != nil {
		return types.Categoria{}, fmt.Errorf("no se pudo guardar la categoría: %w", err)
	}
	return c, nil
}

// ActualizarCategoria shallow-merges the patch over the stored record.
func (s *Store) ActualizarCategoria(id int, patch types.CategoriaPatch) error {
	categorias := s.GetCategorias()
	for i := range categorias {
		if categorias[i].ID != id {
			continue
		}
		c := &categorias[i]
		if patch.Nombre != nil {
			c.Nombre = *patch.Nombre
		}
		if patch.Descripcion != nil {
			c.Descripcion = *patch.Descripcion
		}
		if patch.Estado != nil {
			c.Estado = *patch.Estado
		}
		c.FechaActualizacion = s.now()
		if err := s.setJSON(ClaveCategorias, categorias); err != nil {
			return fmt.Errorf("no se pudo guardar la categoría: %w", err)
		}
		return nil
	}
	return ErrNoEncontrado
}

// EliminarCategoria removes the category with the given id. Products keep
// whatever category slug they reference; no cascade runs.
func (s *Store) EliminarCategoria(id int) error {
	categorias := s.GetCategorias()
	restantes := make([]types.Categoria, 0, len(categorias))
	for _, c := range categorias {
		if c.ID != id {
			restantes = append(restantes, c)
		}
	}
	if len(restantes) == len(categorias) {
		return ErrNoEncontrado
	}
	if err := s.setJSON(ClaveCategorias, restantes); err != nil {
		return fmt.Errorf("no se pudo eliminar la categoría: %w", err)
	}
	return nil
}
