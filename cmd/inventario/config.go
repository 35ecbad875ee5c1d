package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Consulta y ajusta la configuración del restaurante",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Muestra la configuración vigente como JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(store.GetConfiguracion())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Actualiza los ajustes indicados, conservando el resto",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := abrirTienda()
		if err != nil {
			return err
		}
		defer store.Close()

		var patch types.ConfiguracionPatch
		if cmd.Flags().Changed("nombre-restaurante") {
			v := cfg.GetString("nombre-restaurante")
			patch.NombreRestaurante = &v
		}
		if cmd.Flags().Changed("moneda") {
			v := cfg.GetString("moneda")
			patch.Moneda = &v
		}
		if cmd.Flags().Changed("iva") {
			v := cfg.GetInt("iva")
			patch.IVA = &v
		}
		if cmd.Flags().Changed("stock-minimo-global") {
			v := cfg.GetInt("stock-minimo-global")
			patch.StockMinimoGlobal = &v
		}
		if cmd.Flags().Changed("unidad-medida") {
			v := cfg.GetString("unidad-medida")
			patch.UnidadMedida = &v
		}
		if cmd.Flags().Changed("tiempo-sesion") {
			v := cfg.GetInt("tiempo-sesion")
			patch.TiempoSesion = &v
		}
		if cmd.Flags().Changed("backup-automatico") {
			v := cfg.GetBool("backup-automatico")
			patch.BackupAutomatico = &v
		}

		if err := store.ActualizarConfiguracion(patch); err != nil {
			return err
		}
		fmt.Println("Configuración actualizada")
		return nil
	},
}

func init() {
	configSetCmd.Flags().String("nombre-restaurante", "", "nombre del restaurante")
	configSetCmd.Flags().String("moneda", "", "código de moneda (MXN, USD, ...)")
	configSetCmd.Flags().Int("iva", 0, "porcentaje de IVA")
	configSetCmd.Flags().Int("stock-minimo-global", 0, "umbral de stock bajo por defecto")
	configSetCmd.Flags().String("unidad-medida", "", "unidad de medida por defecto")
	configSetCmd.Flags().Int("tiempo-sesion", 0, "minutos de sesión")
	configSetCmd.Flags().Bool("backup-automatico", false, "habilita el respaldo automático")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
