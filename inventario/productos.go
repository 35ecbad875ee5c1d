package inventario

import (
	"fmt"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

// GetProductos returns the product collection in insertion order, or an empty
// slice when the key is absent.
func (s *Store) GetProductos() []types.Producto {
	var productos []types.Producto
	if !s.Get(ClaveProductos, &productos) || productos == nil {
		return []types.Producto{}
	}
	return productos
}

// SetProductos replaces the whole product collection.
func (s *Store) SetProductos(productos []types.Producto) bool {
	return s.Set(ClaveProductos, productos)
}

// AgregarProducto assigns the next id, stamps the creation time, appends and
// persists the product, returning the stored record.
func (s *Store) AgregarProducto(p types.Producto) (types.Producto, error) {
	productos := s.GetProductos()
	p.ID = siguienteID(productos, func(p types.Producto) int { return p.ID })
	p.FechaCreacion = s.now()
	productos = append(productos, p)
	if err := s.setJSON(ClaveProductos, productos); err != nil {
		return types.Producto{}, fmt.Errorf("no se pudo guardar el producto: %w", err)
	}
	return p, nil
}

// ActualizarProducto shallow-merges the patch over the stored record and
// stamps the update time. It returns ErrNoEncontrado when no product has the
// given id.
func (s *Store) ActualizarProducto(id int, patch types.ProductoPatch) error {
	productos := s.GetProductos()
	for i := range productos {
		if productos[i].ID != id {
			continue
		}
		p := &productos[i]
		if patch.Nombre != nil {
			p.Nombre = *patch.Nombre
		}
		if patch.Categoria != nil {
			p.Categoria = *patch.Categoria
		}
		if patch.Precio != nil {
			p.Precio = *patch.Precio
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.StockMinimo != nil {
			p.StockMinimo = *patch.StockMinimo
		}
		if patch.QuitarProveedor {
			p.Proveedor = nil
		} else if patch.Proveedor != nil {
			p.Proveedor = patch.Proveedor
		}
		if patch.Descripcion != nil {
			p.Descripcion = *patch.Descripcion
		}
		p.FechaActualizacion = s.now()
		if err := s.setJSON(ClaveProductos, productos); err != nil {
			return fmt.Errorf("no se pudo guardar el producto: %w", err)
		}
		return nil
	}
	return ErrNoEncontrado
}

// EliminarProducto removes the product with the given id.
func (s *Store) EliminarProducto(id int) error {
	productos := s.GetProductos()
	restantes := make([]types.Producto, 0, len(productos))
	for _, p := range productos {
		if p.ID != id {
			restantes = append(restantes, p)
		}
	}
	if len(restantes) == len(productos) {
		return ErrNoEncontrado
	}
	if err := s.setJSON(ClaveProductos, restantes); err != nil {
		return fmt.Errorf("no se pudo eliminar el producto: %w", err)
	}
	return nil
}

// BuscarProductos returns the products whose name, category or description
// contains the term, case-insensitively. An empty term returns the full
// collection in original order.
func (s *Store) BuscarProductos(termino string) []types.Producto {
	productos := s.GetProductos()
	if termino == "" {
		return productos
	}
	resultado := make([]types.Producto, 0, len(productos))
	for _, p := range productos {
		if coincide(p.Nombre, termino) || coincide(p.Categoria, termino) || coincide(p.Descripcion, termino) {
			resultado = append(resultado, p)
		}
	}
	return resultado
}

// ProductosPorProveedor returns the products referencing the given supplier.
func (s *Store) ProductosPorProveedor(proveedorID int) []types.Producto {
	var resultado []types.Producto
	for _, p := range s.GetProductos() {
		if p.Proveedor != nil && *p.Proveedor == proveedorID {
			resultado = append(resultado, p)
		}
	}
	return resultado
}

// Estadisticas are the dashboard counters derived from the catalog.
type Estadisticas struct {
	TotalProductos  int `json:"totalProductos"`
	StockBajo       int `json:"stockBajo"`
	StockAgotado    int `json:"stockAgotado"`
	TotalCategorias int `json:"totalCategorias"`
}

// ObtenerEstadisticas counts products in total, with low stock
// (0 < stock <= stockMinimo), out of stock (stock == 0), and the number of
// categories.
func (s *Store) ObtenerEstadisticas() Estadisticas {
	productos := s.GetProductos()
	stats := Estadisticas{
		TotalProductos:  len(productos),
		TotalCategorias: len(s.GetCategorias()),
	}
	for _, p := range productos {
		switch {
		case p.Stock == 0:
			stats.StockAgotado++
		case p.Stock <= p.StockMinimo:
			stats.StockBajo++
		}
	}
	return stats
}
