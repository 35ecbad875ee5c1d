package testutil_test

import (
	"testing"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/testutil"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

func TestNuevaTiendaIsEmpty(t *testing.T) {
	store := testutil.NuevaTienda(t)

	if got := len(store.GetProductos()); got != 0 {
		t.Errorf("expected an empty store, got %d products", got)
	}
}

func TestNuevaTiendaIsolation(t *testing.T) {
	primera := testutil.NuevaTienda(t)
	segunda := testutil.NuevaTienda(t)

	primera.SetProductos([]types.Producto{{ID: 1, Nombre: "Maki", Categoria: "pescados", Precio: 5, Stock: 1, StockMinimo: 1}})

	if got := len(segunda.GetProductos()); got != 0 {
		t.Errorf("expected fixtures to be isolated, second store has %d products", got)
	}
}

func TestNuevaTiendaSembradaUsesFixedClock(t *testing.T) {
	store := testutil.NuevaTiendaSembrada(t)

	guardado, err := store.AgregarProducto(types.Producto{Nombre: "Alga Nori", Categoria: "verduras", Precio: 2.10, Stock: 30, StockMinimo: 5})
	if err != nil {
		t.Fatalf("AgregarProducto failed: %v", err)
	}
	if !guardado.FechaCreacion.Equal(testutil.FechaFija) {
		t.Errorf("expected creation stamp %v, got %v", testutil.FechaFija, guardado.FechaCreacion)
	}
}

func TestHasherPlano(t *testing.T) {
	h := testutil.HasherPlano{}

	hash, err := h.Hash("secreta123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if !h.Verify(hash, "secreta123") {
		t.Error("expected the right password to verify")
	}
	if h.Verify(hash, "equivocada") {
		t.Error("expected a wrong password to fail")
	}
}
