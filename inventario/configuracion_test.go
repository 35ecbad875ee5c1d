package inventario_test

import (
	"testing"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/testutil"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

func TestGetConfiguracionFallsBackToSeed(t *testing.T) {
	store := testutil.NuevaTienda(t)

	config := store.GetConfiguracion()
	if config.NombreRestaurante != "Sushi House" {
		t.Errorf("expected the seed configuration, got %q", config.NombreRestaurante)
	}
	if config.IVA != 16 || config.Moneda != "MXN" {
		t.Errorf("unexpected seed defaults: IVA=%d Moneda=%q", config.IVA, config.Moneda)
	}
}

func TestActualizarConfiguracion(t *testing.T) {
	store := testutil.NuevaTiendaSembrada(t)

	nombre := "Sushi House Centro"
	iva := 21
	notif := false
	err := store.ActualizarConfiguracion(types.ConfiguracionPatch{
		NombreRestaurante: &nombre,
		IVA:               &iva,
		NotifStockBajo:    &notif,
	})
	if err != nil {
		t.Fatalf("ActualizarConfiguracion failed: %v", err)
	}

	config := store.GetConfiguracion()
	if config.NombreRestaurante != "Sushi House Centro" {
		t.Errorf("name not patched: %q", config.NombreRestaurante)
	}
	if config.IVA != 21 {
		t.Errorf("IVA not patched: %d", config.IVA)
	}
	if config.NotifStockBajo {
		t.Error("NotifStockBajo not patched to false")
	}
	// Untouched settings keep their values.
	if config.Moneda != "MXN" {
		t.Errorf("unpatched Moneda changed: %q", config.Moneda)
	}
	if config.TiempoSesion != 30 {
		t.Errorf("unpatched TiempoSesion changed: %d", config.TiempoSesion)
	}
}

func TestActualizarConfiguracionSobreStoreVacio(t *testing.T) {
	// Patching before anything was stored merges over the seed defaults.
	store := testutil.NuevaTienda(t)

	moneda := "USD"
	if err := store.ActualizarConfiguracion(types.ConfiguracionPatch{Moneda: &moneda}); err != nil {
		t.Fatalf("ActualizarConfiguracion failed: %v", err)
	}

	config := store.GetConfiguracion()
	if config.Moneda != "USD" {
		t.Errorf("Moneda not patched: %q", config.Moneda)
	}
	if config.NombreRestaurante != "Sushi House" {
		t.Errorf("expected seed defaults to back the merge, got %q", config.NombreRestaurante)
	}
}
