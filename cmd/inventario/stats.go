package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Muestra los contadores del inventario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		stats := store.ObtenerEstadisticas()
		fmt.Printf("Total de productos:   %d\n", stats.TotalProductos)
		fmt.Printf("Con stock bajo:       %d\n", stats.StockBajo)
		fmt.Printf("Agotados:             %d\n", stats.StockAgotado)
		fmt.Printf("Categorías:           %d\n", stats.TotalCategorias)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
