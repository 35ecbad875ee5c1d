package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

var productosCmd = &cobra.Command{
	Use:   "productos",
	Short: "Administra el catálogo de productos",
}

var productosListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista los productos del catálogo",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()
		return imprimirProductos(store.GetProductos())
	},
}

var productosSearchCmd = &cobra.Command{
	Use:   "search <término>",
	Short: "Busca productos por nombre, categoría o descripción",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		resultado := store.BuscarProductos(args[0])
		if len(resultado) == 0 {
			fmt.Println("Sin resultados")
			return nil
		}
		return imprimirProductos(resultado)
	},
}

var productosAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Agrega un producto al catálogo",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		p := types.Producto{
			Nombre:      cfg.GetString("nombre"),
			Categoria:   cfg.GetString("categoria"),
			Precio:      cfg.GetFloat64("precio"),
			Stock:       cfg.GetInt("stock"),
			StockMinimo: cfg.GetInt("stock-minimo"),
			Descripcion: cfg.GetString("descripcion"),
		}
		if cmd.Flags().Changed("proveedor") {
			proveedor := cfg.GetInt("proveedor")
			p.Proveedor = &proveedor
		}

		if result := store.ValidarProducto(p); !result.IsValid {
			return errorDeValidacion(result.Errors)
		}
		guardado, err := store.AgregarProducto(p)
		if err != nil {
			return err
		}
		fmt.Printf("Producto #%d agregado: %s\n", guardado.ID, guardado.Nombre)
		return nil
	},
}

var productosUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Actualiza los campos indicados de un producto",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id inválido: %s", args[0])
		}
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		var patch types.ProductoPatch
		if cmd.Flags().Changed("nombre") {
			v := cfg.GetString("nombre")
			patch.Nombre = &v
		}
		if cmd.Flags().Changed("categoria") {
			v := cfg.GetString("categoria")
			patch.Categoria = &v
		}
		if cmd.Flags().Changed("precio") {
			v := cfg.GetFloat64("precio")
			patch.Precio = &v
		}
		if cmd.Flags().Changed("stock") {
			v := cfg.GetInt("stock")
			patch.Stock = &v
		}
		if cmd.Flags().Changed("stock-minimo") {
			v := cfg.GetInt("stock-minimo")
			patch.StockMinimo = &v
		}
		if cfg.GetBool("sin-proveedor") {
			patch.QuitarProveedor = true
		} else if cmd.Flags().Changed("proveedor") {
			v := cfg.GetInt("proveedor")
			patch.Proveedor = &v
		}
		if cmd.Flags().Changed("descripcion") {
			v := cfg.GetString("descripcion")
			patch.Descripcion = &v
		}

		if err := store.ActualizarProducto(id, patch); err != nil {
			return err
		}
		fmt.Printf("Producto #%d actualizado\n", id)
		return nil
	},
}

var productosDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina un producto del catálogo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id inválido: %s", args[0])
		}
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.EliminarProducto(id); err != nil {
			return err
		}
		fmt.Printf("Producto #%d eliminado\n", id)
		return nil
	},
}

func agregarFlagsProducto(cmd *cobra.Command) {
	cmd.Flags().String("nombre", "", "nombre del producto")
	cmd.Flags().String("categoria", "", "categoría del producto")
	cmd.Flags().Float64("precio", 0, "precio unitario")
	cmd.Flags().Int("stock", 0, "existencias actuales")
	cmd.Flags().Int("stock-minimo", 0, "umbral de stock bajo")
	cmd.Flags().Int("proveedor", 0, "id del proveedor")
	cmd.Flags().String("descripcion", "", "descripción del producto")
}

func imprimirProductos(productos []types.Producto) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORÍA\tPRECIO\tSTOCK\tMÍNIMO")
	for _, p := range productos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%d\t%d\n",
			p.ID, p.Nombre, p.Categoria, p.Precio, p.Stock, p.StockMinimo)
	}
	return w.Flush()
}

// errorDeValidacion flattens a validation error map into a deterministic,
// one-line-per-field error.
func errorDeValidacion(errores map[string]string) error {
	campos := make([]string, 0, len(errores))
	for campo := range errores {
		campos = append(campos, campo)
	}
	sort.Strings(campos)
	msg := "datos inválidos:"
	for _, campo := range campos {
		msg += fmt.Sprintf("\n  %s: %s", campo, errores[campo])
	}
	return fmt.Errorf("%s", msg)
}

func init() {
	agregarFlagsProducto(productosAddCmd)
	agregarFlagsProducto(productosUpdateCmd)
	productosUpdateCmd.Flags().Bool("sin-proveedor", false, "quita la referencia al proveedor")
	productosCmd.AddCommand(productosListCmd)
	productosCmd.AddCommand(productosSearchCmd)
	productosCmd.AddCommand(productosAddCmd)
	productosCmd.AddCommand(productosUpdateCmd)
	productosCmd.AddCommand(productosDeleteCmd)
	rootCmd.AddCommand(productosCmd)
}
