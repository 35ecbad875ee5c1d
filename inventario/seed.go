package inventario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

// Semilla is the data InitializeStorage writes into any collection that is
// not yet present in the backend.
type Semilla struct {
	Productos     []types.Producto    `json:"productos" yaml:"productos"`
	Categorias    []types.Categoria   `json:"categorias" yaml:"categorias"`
	Proveedores   []types.Proveedor   `json:"proveedores" yaml:"proveedores"`
	Usuarios      []types.Usuario     `json:"usuarios" yaml:"usuarios"`
	Configuracion types.Configuracion `json:"configuracion" yaml:"configuracion"`
}

// AdminRespaldo is the minimal user collection guaranteed to exist: a single
// root admin. It carries no credential; one has to be set through the user
// CRUD before the account can authenticate anywhere.
func (s Semilla) AdminRespaldo() []types.Usuario {
	return []types.Usuario{{
		ID:       1,
		Nombre:   "Admin Manager",
		Email:    "admin@sushihouse.com",
		Rol:      types.RolAdmin,
		Estado:   types.EstadoActivo,
		Permisos: []string{"create", "read", "update", "delete"},
	}}
}

// DefaultSemilla returns the built-in starting catalog.
func DefaultSemilla() Semilla {
	return Semilla{
		Productos: []types.Producto{
			{ID: 1, Nombre: "Filete de Res", Categoria: "carnes", Precio: 25.50, Stock: 45, StockMinimo: 10, Proveedor: intPtr(1), Descripcion: "Filete de res premium para parrilla"},
			{ID: 2, Nombre: "Salmón Fresco", Categoria: "pescados", Precio: 32.75, Stock: 22, StockMinimo: 5, Proveedor: intPtr(2), Descripcion: "Salmón fresco del Atlántico"},
			{ID: 3, Nombre: "Lechuga Romana", Categoria: "verduras", Precio: 3.20, Stock: 80, StockMinimo: 20, Proveedor: intPtr(3), Descripcion: "Lechuga romana orgánica"},
			{ID: 4, Nombre: "Queso Parmesano", Categoria: "lacteos", Precio: 18.90, Stock: 15, StockMinimo: 8, Proveedor: intPtr(4), Descripcion: "Queso parmesano añejado 24 meses"},
			{ID: 5, Nombre: "Vino Tinto Reserva", Categoria: "bebidas", Precio: 42.00, Stock: 3, StockMinimo: 5, Proveedor: intPtr(5), Descripcion: "Vino tinto reserva 2018"},
			{ID: 6, Nombre: "Pechuga de Pollo", Categoria: "carnes", Precio: 12.80, Stock: 60, StockMinimo: 15, Descripcion: "Pechuga de pollo sin hueso"},
			{ID: 7, Nombre: "Atún en Lata", Categoria: "pescados", Precio: 8.50, Stock: 0, StockMinimo: 10, Descripcion: "Atún en lata en aceite de oliva"},
			{ID: 8, Nombre: "Tomates", Categoria: "verduras", Precio: 4.30, Stock: 5, StockMinimo: 15, Proveedor: intPtr(3), Descripcion: "Tomates maduros orgánicos"},
		},
		Categorias: []types.Categoria{
			{ID: 1, Nombre: "Carnes", Descripcion: "Productos cárnicos y avícolas", Estado: types.EstadoActiva},
			{ID: 2, Nombre: "Pescados", Descripcion: "Pescados y mariscos frescos", Estado: types.EstadoActiva},
			{ID: 3, Nombre: "Verduras", Descripcion: "Verduras y hortalizas frescas", Estado: types.EstadoActiva},
			{ID: 4, Nombre: "Lácteos", Descripcion: "Productos lácteos y derivados", Estado: types.EstadoActiva},
			{ID: 5, Nombre: "Bebidas", Descripcion: "Bebidas alcohólicas y no alcohólicas", Estado: types.EstadoActiva},
		},
		Proveedores: []types.Proveedor{
			{ID: 1, Nombre: "Carnicería Premium", Contacto: "Juan Pérez", Telefono: "+34 600 123 456", Email: "juan@carniceriapremium.com", Direccion: "Calle Carnicería 123, Madrid", Estado: types.EstadoActiva, Categorias: []int{1}},
			{ID: 2, Nombre: "Pescadería del Mar", Contacto: "María García", Telefono: "+34 600 234 567", Email: "maria@pescaderiadelmar.com", Direccion: "Avenida del Puerto 45, Barcelona", Estado: types.EstadoActiva, Categorias: []int{2}},
			{ID: 3, Nombre: "Verduras Frescas S.A.", Contacto: "Carlos López", Telefono: "+34 600 345 678", Email: "carlos@verdurasfrescas.com", Direccion: "Polígono Industrial Norte, Valencia", Estado: types.EstadoActiva, Categorias: []int{3}},
			{ID: 4, Nombre: "Lácteos Italianos", Contacto: "Ana Rossi", Telefono: "+34 600 456 789", Email: "ana@lacteositalianos.com", Direccion: "Calle Italia 67, Sevilla", Estado: types.EstadoActiva, Categorias: []int{4}},
			{ID: 5, Nombre: "Bodegas Selectas", Contacto: "Pedro Martínez", Telefono: "+34 600 567 890", Email: "pedro@bodegasselectas.com", Direccion: "Carretera del Vino km. 12, La Rioja", Estado: types.EstadoActiva, Categorias: []int{5}},
		},
		Usuarios: []types.Usuario{
			{ID: 1, Nombre: "Admin Manager", Email: "admin@sushihouse.com", Rol: types.RolAdmin, Estado: types.EstadoActivo, Permisos: []string{"create", "read", "update", "delete"}},
			{ID: 2, Nombre: "María González", Email: "maria@sushihouse.com", Rol: types.RolUsuario, Estado: types.EstadoActivo, Permisos: []string{"create", "read", "update"}},
		},
		Configuracion: types.DefaultConfiguracion(),
	}
}

// CargarSemilla reads a seed catalog from a YAML file. Sections absent from
// the file keep their built-in defaults.
func CargarSemilla(path string) (Semilla, error) {
	sem := DefaultSemilla()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Semilla{}, fmt.Errorf("no se pudo leer la semilla: %w", err)
	}
	if err := yaml.Unmarshal(raw, &sem); err != nil {
		return Semilla{}, fmt.Errorf("semilla inválida: %w", err)
	}
	return sem, nil
}

func intPtr(v int) *int { return &v }
