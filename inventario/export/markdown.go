package export

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario"
)

// quitarAcentos strips combining marks, so "Lácteos" folds to "Lacteos".
var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugCategoria folds a category name or product category reference to a
// common comparable form: lower case, accents removed. Products reference
// categories by accentless slug ("lacteos") while the category record carries
// the display name ("Lácteos").
func slugCategoria(nombre string) string {
	plano, _, err := transform.String(quitarAcentos, nombre)
	if err != nil {
		plano = nombre
	}
	return strings.ToLower(plano)
}

// ReporteMarkdown writes a human-readable inventory report: the dashboard
// counters followed by a per-category product table, flagging products at or
// below their minimum stock.
func ReporteMarkdown(s *inventario.Store, w io.Writer) error {
	var sb strings.Builder

	config := s.GetConfiguracion()
	stats := s.ObtenerEstadisticas()

	sb.WriteString("# Inventario de " + config.NombreRestaurante + "\n\n")
	fmt.Fprintf(&sb, "- Productos: %d\n", stats.TotalProductos)
	fmt.Fprintf(&sb, "- Con stock bajo: %d\n", stats.StockBajo)
	fmt.Fprintf(&sb, "- Agotados: %d\n", stats.StockAgotado)
	fmt.Fprintf(&sb, "- Categorías: %d\n", stats.TotalCategorias)

	for _, c := range s.GetCategorias() {
		slug := slugCategoria(c.Nombre)
		productos := []string{}
		for _, p := range s.GetProductos() {
			if slugCategoria(p.Categoria) != slug {
				continue
			}
			linea := fmt.Sprintf("| %s | %.2f %s | %d | %d |", p.Nombre, p.Precio, config.Moneda, p.Stock, p.StockMinimo)
			if p.Stock == 0 {
				linea += " agotado |"
			} else if p.Stock <= p.StockMinimo {
				linea += " stock bajo |"
			} else {
				linea += " |"
			}
			productos = append(productos, linea)
		}
		if len(productos) == 0 {
			continue
		}
		sb.WriteString("\n## " + c.Nombre + "\n\n")
		sb.WriteString("| Producto | Precio | Stock | Mínimo | Alerta |\n")
		sb.WriteString("| --- | --- | --- | --- | --- |\n")
		sb.WriteString(strings.Join(productos, "\n"))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
