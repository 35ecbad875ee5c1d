// Package export serializes the inventory collections for use outside the
// store: per-collection CSV files for spreadsheets and a JSON backup envelope
// covering the full data set.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario"
)

const fechaNunca = "Nunca"

// ProductosCSV writes the product collection as CSV.
func ProductosCSV(s *inventario.Store, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Nombre", "Categoría", "Precio", "Stock", "Stock Mínimo", "Proveedor", "Descripción"}); err != nil {
		return err
	}
	for _, p := range s.GetProductos() {
		proveedor := ""
		if p.Proveedor != nil {
			proveedor = strconv.Itoa(*p.Proveedor)
		}
		row := []string{
			p.Nombre,
			p.Categoria,
			strconv.FormatFloat(p.Precio, 'f', 2, 64),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.StockMinimo),
			proveedor,
			p.Descripcion,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ProveedoresCSV writes the supplier collection as CSV, including the number
// of products each supplier is referenced by.
func ProveedoresCSV(s *inventario.Store, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Nombre", "Contacto", "Teléfono", "Email", "Dirección", "Estado", "Productos"}); err != nil {
		return err
	}
	for _, p := range s.GetProveedores() {
		row := []string{
			p.Nombre,
			p.Contacto,
			p.Telefono,
			p.Email,
			p.Direccion,
			p.Estado,
			strconv.Itoa(len(s.ProductosPorProveedor(p.ID))),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// UsuariosCSV writes the user collection as CSV. Credentials are never
// exported.
func UsuariosCSV(s *inventario.Store, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Nombre", "Email", "Rol", "Estado", "Último Acceso"}); err != nil {
		return err
	}
	for _, u := range s.GetUsuarios() {
		acceso := fechaNunca
		if !u.UltimoAcceso.IsZero() {
			acceso = u.UltimoAcceso.Format("02/01/2006 15:04")
		}
		row := []string{u.Nombre, u.Email, string(u.Rol), u.Estado, acceso}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ColeccionCSV writes the named collection, for callers driving the export
// from user input (e.g. the CLI).
func ColeccionCSV(s *inventario.Store, nombre string, w io.Writer) error {
	switch nombre {
	case inventario.ClaveProductos:
		return ProductosCSV(s, w)
	case inventario.ClaveProveedores:
		return ProveedoresCSV(s, w)
	case inventario.ClaveUsuarios:
		return UsuariosCSV(s, w)
	default:
		return fmt.Errorf("colección desconocida: %s", nombre)
	}
}
