package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta los datos del inventario",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv <colección>",
	Short: "Escribe una colección como CSV en la salida estándar",
	Long: `Export csv writes one collection (productos, proveedores or usuarios) as CSV
to stdout. User credentials are never included.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()
		return export.ColeccionCSV(store, args[0], os.Stdout)
	},
}

var exportReporteCmd = &cobra.Command{
	Use:   "reporte",
	Short: "Escribe un reporte Markdown del inventario en la salida estándar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()
		return export.ReporteMarkdown(store, os.Stdout)
	},
}

var exportBackupCmd = &cobra.Command{
	Use:   "backup <archivo>",
	Short: "Guarda un respaldo JSON completo del inventario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := export.GuardarRespaldo(store, args[0]); err != nil {
			return err
		}
		fmt.Printf("Respaldo guardado en %s\n", args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <archivo>",
	Short: "Restaura el inventario desde un respaldo JSON",
	Long: `Restore replaces every collection with the backup contents in one atomic
write. Data not covered by the backup's namespace is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		respaldo, err := export.CargarRespaldo(args[0])
		if err != nil {
			return err
		}
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := export.RestaurarRespaldo(store, respaldo); err != nil {
			return err
		}
		fmt.Printf("Inventario restaurado desde el respaldo %s (%s)\n",
			respaldo.ID, respaldo.Fecha.Format("02/01/2006 15:04"))
		return nil
	},
}

func init() {
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportReporteCmd)
	exportCmd.AddCommand(exportBackupCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
}
