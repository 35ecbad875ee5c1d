package inventario

import (
	"fmt"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

// GetConfiguracion returns the configuration document, falling back to the
// seed configuration when the key is absent. The document therefore always
// exists from the caller's point of view.
func (s *Store) GetConfiguracion() types.Configuracion {
	var config types.Configuracion
	if !s.Get(ClaveConfiguracion, &config) {
		return s.semilla.Configuracion
	}
	return config
}

// SetConfiguracion replaces the whole configuration document.
func (s *Store) SetConfiguracion(config types.Configuracion) bool {
	return s.Set(ClaveConfiguracion, config)
}

// ActualizarConfiguracion shallow-merges the patch over the stored document:
// only non-nil fields overwrite, every other setting keeps its current value.
func (s *Store) ActualizarConfiguracion(patch types.ConfiguracionPatch) error {
	config := s.GetConfiguracion()

	aplicarString := func(dest *string, src *string) {
		if src != nil {
			*dest = *src
		}
	}
	aplicarInt := func(dest *int, src *int) {
		if src != nil {
			*dest = *src
		}
	}
	aplicarBool := func(dest *bool, src *bool) {
		if src != nil {
			*dest = *src
		}
	}

	aplicarString(&config.NombreRestaurante, patch.NombreRestaurante)
	aplicarString(&config.DireccionRestaurante, patch.DireccionRestaurante)
	aplicarString(&config.TelefonoRestaurante, patch.TelefonoRestaurante)
	aplicarString(&config.Moneda, patch.Moneda)
	aplicarInt(&config.IVA, patch.IVA)
	aplicarString(&config.FormatoFecha, patch.FormatoFecha)

	aplicarInt(&config.StockMinimoGlobal, patch.StockMinimoGlobal)
	aplicarString(&config.AlertaStockBajo, patch.AlertaStockBajo)
	aplicarString(&config.UnidadMedida, patch.UnidadMedida)
	aplicarString(&config.CategoriaPredeterminada, patch.CategoriaPredeterminada)
	aplicarBool(&config.ControlCaducidad, patch.ControlCaducidad)

	aplicarBool(&config.NotificacionesAutomaticas, patch.NotificacionesAutomaticas)
	aplicarString(&config.EmailNotificaciones, patch.EmailNotificaciones)
	aplicarBool(&config.NotifStockBajo, patch.NotifStockBajo)
	aplicarBool(&config.NotifStockAgotado, patch.NotifStockAgotado)
	aplicarBool(&config.NotifProductosCaducados, patch.NotifProductosCaducados)
	aplicarBool(&config.NotifPedidosPendientes, patch.NotifPedidosPendientes)
	aplicarBool(&config.NotifReportesAutomaticos, patch.NotifReportesAutomaticos)
	aplicarBool(&config.NotifActividadUsuarios, patch.NotifActividadUsuarios)
	aplicarString(&config.FrecuenciaReportes, patch.FrecuenciaReportes)
	aplicarString(&config.HoraNotificaciones, patch.HoraNotificaciones)

	aplicarInt(&config.TiempoSesion, patch.TiempoSesion)
	aplicarInt(&config.IntentosFallidos, patch.IntentosFallidos)
	aplicarBool(&config.RequerirConfirmacion, patch.RequerirConfirmacion)
	aplicarBool(&config.RegistroActividad, patch.RegistroActividad)
	aplicarBool(&config.BackupAutomatico, patch.BackupAutomatico)

	if err := s.setJSON(ClaveConfiguracion, config); err != nil {
		return fmt.Errorf("no se pudo guardar la configuración: %w", err)
	}
	return nil
}
