package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Crea el archivo de datos y siembra el catálogo por defecto",
	Long: `Init seeds every collection that is not already present in the data file.
Existing data is never overwritten, so running init twice is safe.

A custom seed catalog can be supplied as YAML with --semilla.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		if !store.InitializeStorage() {
			return fmt.Errorf("no se pudo inicializar el almacenamiento")
		}
		stats := store.ObtenerEstadisticas()
		fmt.Printf("Inventario listo: %d productos, %d categorías\n",
			stats.TotalProductos, stats.TotalCategorias)
		return nil
	},
}

func init() {
	initCmd.Flags().String("semilla", "", "archivo YAML con el catálogo inicial")
	rootCmd.AddCommand(initCmd)
}
