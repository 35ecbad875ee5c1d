package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario"
)

// RespaldoVersion identifies the backup envelope format.
const RespaldoVersion = "1.0"

// Respaldo is a full snapshot of the five collections/documents, wrapped in
// metadata identifying when and under which format it was taken.
type Respaldo struct {
	ID      string             `json:"id"`
	Fecha   time.Time          `json:"fecha"`
	Version string             `json:"version"`
	Datos   inventario.Semilla `json:"datos"`
}

// CrearRespaldo snapshots the store.
func CrearRespaldo(s *inventario.Store) Respaldo {
	return Respaldo{
		ID:      uuid.New().String(),
		Fecha:   time.Now(),
		Version: RespaldoVersion,
		Datos:   s.ExportarDatos(),
	}
}

// GuardarRespaldo writes a snapshot of the store to path as indented JSON.
func GuardarRespaldo(s *inventario.Store, path string) error {
	respaldo := CrearRespaldo(s)
	raw, err := json.MarshalIndent(respaldo, "", "  ")
	if err != nil {
		return fmt.Errorf("no se pudo serializar el respaldo: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("no se pudo escribir el respaldo: %w", err)
	}
	return nil
}

// CargarRespaldo reads and validates a backup file.
func CargarRespaldo(path string) (Respaldo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Respaldo{}, fmt.Errorf("no se pudo leer el respaldo: %w", err)
	}
	var respaldo Respaldo
	if err := json.Unmarshal(raw, &respaldo); err != nil {
		return Respaldo{}, fmt.Errorf("respaldo inválido: %w", err)
	}
	if respaldo.Version != RespaldoVersion {
		return Respaldo{}, fmt.Errorf("versión de respaldo no soportada: %q", respaldo.Version)
	}
	return respaldo, nil
}

// RestaurarRespaldo replaces the store's data with the backup contents in one
// atomic batch.
func RestaurarRespaldo(s *inventario.Store, respaldo Respaldo) error {
	if err := s.ImportarDatos(respaldo.Datos); err != nil {
		return fmt.Errorf("no se pudo restaurar el respaldo: %w", err)
	}
	return nil
}
