package inventario_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario/storage"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/testutil"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

func TestGetSetRoundTrip(t *testing.T) {
	store := testutil.NuevaTienda(t)

	productos := []types.Producto{{ID: 1, Nombre: "Edamame", Categoria: "verduras", Precio: 3.50, Stock: 10, StockMinimo: 2}}
	if !store.Set(inventario.ClaveProductos, productos) {
		t.Fatal("Set failed")
	}

	var leidos []types.Producto
	if !store.Get(inventario.ClaveProductos, &leidos) {
		t.Fatal("Get failed for a key that was just written")
	}
	if diff := cmp.Diff(productos, leidos); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	config := types.DefaultConfiguracion()
	config.IVA = 21
	if !store.SetConfiguracion(config) {
		t.Fatal("SetConfiguracion failed")
	}
	if diff := cmp.Diff(config, store.GetConfiguracion()); diff != "" {
		t.Errorf("configuration round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGetAbsentKey(t *testing.T) {
	store := testutil.NuevaTienda(t)

	var productos []types.Producto
	if store.Get(inventario.ClaveProductos, &productos) {
		t.Error("expected Get to report false for an absent key")
	}
	if productos != nil {
		t.Errorf("expected dest to stay untouched, got %v", productos)
	}
}

func TestRemove(t *testing.T) {
	store := testutil.NuevaTienda(t)

	store.Set(inventario.ClaveCategorias, []types.Categoria{{ID: 1, Nombre: "Carnes"}})
	if !store.Remove(inventario.ClaveCategorias) {
		t.Fatal("Remove failed")
	}
	var categorias []types.Categoria
	if store.Get(inventario.ClaveCategorias, &categorias) {
		t.Error("expected key to be gone after Remove")
	}

	// Removing an absent key still reports success.
	if !store.Remove(inventario.ClaveCategorias) {
		t.Error("expected Remove of an absent key to report true")
	}
}

func TestInitializeStorage(t *testing.T) {
	t.Run("SeedsEmptyBackend", func(t *testing.T) {
		store := testutil.NuevaTienda(t)

		if !store.InitializeStorage() {
			t.Fatal("InitializeStorage failed")
		}
		if got := len(store.GetProductos()); got != 8 {
			t.Errorf("expected 8 seeded products, got %d", got)
		}
		if got := len(store.GetCategorias()); got != 5 {
			t.Errorf("expected 5 seeded categories, got %d", got)
		}
		if got := len(store.GetProveedores()); got != 5 {
			t.Errorf("expected 5 seeded suppliers, got %d", got)
		}
		if got := len(store.GetUsuarios()); got != 2 {
			t.Errorf("expected 2 seeded users, got %d", got)
		}
		if got := store.GetConfiguracion().NombreRestaurante; got != "Sushi House" {
			t.Errorf("expected seeded restaurant name, got %q", got)
		}
	})

	t.Run("PreservesExistingData", func(t *testing.T) {
		store := testutil.NuevaTienda(t)
		store.SetProductos([]types.Producto{{ID: 42, Nombre: "Gyoza", Categoria: "carnes", Precio: 6.00, Stock: 9, StockMinimo: 3}})

		if !store.InitializeStorage() {
			t.Fatal("InitializeStorage failed")
		}
		productos := store.GetProductos()
		if len(productos) != 1 || productos[0].ID != 42 {
			t.Errorf("expected existing products to survive seeding, got %v", productos)
		}
		// Absent collections still get seeded.
		if got := len(store.GetCategorias()); got != 5 {
			t.Errorf("expected 5 seeded categories, got %d", got)
		}
	})

	t.Run("RestoresBackupAdmin", func(t *testing.T) {
		store := testutil.NuevaTienda(t)
		store.SetUsuarios([]types.Usuario{})

		if !store.InitializeStorage() {
			t.Fatal("InitializeStorage failed")
		}
		usuarios := store.GetUsuarios()
		if len(usuarios) != 1 {
			t.Fatalf("expected exactly the backup admin, got %d users", len(usuarios))
		}
		admin := usuarios[0]
		if admin.ID != 1 || admin.Rol != types.RolAdmin {
			t.Errorf("unexpected backup admin: %+v", admin)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		store := testutil.NuevaTiendaSembrada(t)
		antes := store.ExportarDatos()

		if !store.InitializeStorage() {
			t.Fatal("second InitializeStorage failed")
		}
		if diff := cmp.Diff(antes, store.ExportarDatos()); diff != "" {
			t.Errorf("reseeding changed data (-want +got):\n%s", diff)
		}
	})
}

func TestClearNamespaceIsolation(t *testing.T) {
	backend := storage.NewMemoryBackend()
	defer func() { _ = backend.Close() }()

	sushi := inventario.New(backend, inventario.WithNamespace("sushi"))
	taqueria := inventario.New(backend, inventario.WithNamespace("taqueria"))

	sushi.SetProductos([]types.Producto{{ID: 1, Nombre: "Maki", Categoria: "pescados", Precio: 5, Stock: 1, StockMinimo: 1}})
	taqueria.SetProductos([]types.Producto{{ID: 1, Nombre: "Taco", Categoria: "carnes", Precio: 2, Stock: 1, StockMinimo: 1}})

	if !sushi.Clear() {
		t.Fatal("Clear failed")
	}
	if got := len(sushi.GetProductos()); got != 0 {
		t.Errorf("expected cleared namespace to be empty, got %d products", got)
	}
	if got := len(taqueria.GetProductos()); got != 1 {
		t.Errorf("expected the other namespace to survive, got %d products", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	origen := testutil.NuevaTiendaSembrada(t)
	destino := testutil.NuevaTienda(t)

	datos := origen.ExportarDatos()
	if err := destino.ImportarDatos(datos); err != nil {
		t.Fatalf("ImportarDatos failed: %v", err)
	}
	if diff := cmp.Diff(datos, destino.ExportarDatos()); diff != "" {
		t.Errorf("import/export mismatch (-want +got):\n%s", diff)
	}
}

func TestFileBackedStore(t *testing.T) {
	store := testutil.NuevaTiendaArchivo(t)

	if !store.InitializeStorage() {
		t.Fatal("InitializeStorage failed on file backend")
	}
	if got := len(store.GetProductos()); got != 8 {
		t.Errorf("expected 8 seeded products, got %d", got)
	}
}
