// Command inventario manages the Sushi House inventory store from the
// terminal: seeding, product CRUD, search, statistics, CSV export and JSON
// backup/restore.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario"
)

var cfg = viper.New()

var rootCmd = &cobra.Command{
	Use:   "inventario",
	Short: "Administración del inventario de Sushi House",
	Long: `Inventario administra el catálogo del restaurante sobre un archivo JSON local.

Configuration Sources (in order of precedence):
1. Command line flags
2. Environment variables (INVENTARIO_*)
3. Configuration file (INVENTARIO_CONFIG, ./inventario.yaml or ~/.inventario/inventario.yaml)
4. Built-in defaults

Examples:
  inventario init
  inventario productos list
  inventario productos add --nombre "Nigiri de atún" --categoria pescados --precio 4.50 --stock 40 --stock-minimo 10
  inventario productos search salmón
  inventario stats
  inventario export csv productos > productos.csv
  inventario export backup respaldo.json
  inventario restore respaldo.json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		initLogging(cfg.GetBool("verbose"))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("store", "s", "inventario.json", "ruta del archivo de datos")
	rootCmd.PersistentFlags().String("namespace", inventario.DefaultNamespace, "prefijo de claves dentro del archivo")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "salida detallada")

	if configFile := os.Getenv("INVENTARIO_CONFIG"); configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName("inventario")
		cfg.SetConfigType("yaml")
		cfg.AddConfigPath(".")
		cfg.AddConfigPath("$HOME/.inventario")
	}
	cfg.AutomaticEnv()
	cfg.SetEnvPrefix("INVENTARIO")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	_ = cfg.ReadInConfig()
}

func initLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// abrirTienda opens the store configured through flags/env/config file.
func abrirTienda() (*inventario.Store, error) {
	opts := []inventario.Option{
		inventario.WithNamespace(cfg.GetString("namespace")),
		inventario.WithLogger(slog.Default()),
	}
	if semilla := cfg.GetString("semilla"); semilla != "" {
		sem, err := inventario.CargarSemilla(semilla)
		if err != nil {
			return nil, err
		}
		opts = append(opts, inventario.WithSemilla(sem))
	}
	return inventario.NewFromFile(cfg.GetString("store"), opts...), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
