package inventario_test

import (
	"errors"
	"testing"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/inventario"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/testutil"
	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

func TestAgregarUsuario(t *testing.T) {
	store := testutil.NuevaTiendaSembrada(t)

	guardado, err := store.AgregarUsuario(types.Usuario{
		Nombre: "Carlos Ramírez",
		Email:  "carlos@sushihouse.com",
		Rol:    types.RolUsuario,
	}, "secreta123")
	if err != nil {
		t.Fatalf("AgregarUsuario failed: %v", err)
	}
	if guardado.ID != 3 {
		t.Errorf("expected id 3 after the 2 seeded users, got %d", guardado.ID)
	}
	if guardado.Estado != types.EstadoActivo {
		t.Errorf("expected default state %q, got %q", types.EstadoActivo, guardado.Estado)
	}
	if !(testutil.HasherPlano{}).Verify(guardado.ContrasenaHash, "secreta123") {
		t.Errorf("stored credential does not verify: %q", guardado.ContrasenaHash)
	}
}

func TestVerificarContrasena(t *testing.T) {
	store := testutil.NuevaTiendaSembrada(t)

	guardado, err := store.AgregarUsuario(types.Usuario{
		Nombre: "Carlos Ramírez",
		Email:  "carlos@sushihouse.com",
		Rol:    types.RolUsuario,
	}, "secreta123")
	if err != nil {
		t.Fatalf("AgregarUsuario failed: %v", err)
	}

	if !store.VerificarContrasena(guardado.ID, "secreta123") {
		t.Error("expected the right password to verify")
	}
	if store.VerificarContrasena(guardado.ID, "equivocada") {
		t.Error("expected a wrong password to fail")
	}
	// The seed admin carries no credential, so nothing verifies for it.
	if store.VerificarContrasena(1, "") {
		t.Error("expected a credential-less user to never verify")
	}
	if store.VerificarContrasena(999, "secreta123") {
		t.Error("expected an unknown user to never verify")
	}
}

func TestActualizarUsuario(t *testing.T) {
	t.Run("KeepsCredentialWithoutPassword", func(t *testing.T) {
		store := testutil.NuevaTiendaSembrada(t)
		guardado, err := store.AgregarUsuario(types.Usuario{Nombre: "Carlos Ramírez", Email: "carlos@sushihouse.com", Rol: types.RolUsuario}, "secreta123")
		if err != nil {
			t.Fatalf("AgregarUsuario failed: %v", err)
		}

		nombre := "Carlos R. Ramírez"
		if err := store.ActualizarUsuario(guardado.ID, types.UsuarioPatch{Nombre: &nombre}); err != nil {
			t.Fatalf("ActualizarUsuario failed: %v", err)
		}
		if !store.VerificarContrasena(guardado.ID, "secreta123") {
			t.Error("expected the credential to survive a non-password patch")
		}
	})

	t.Run("RehashesNewPassword", func(t *testing.T) {
		store := testutil.NuevaTiendaSembrada(t)
		guardado, err := store.AgregarUsuario(types.Usuario{Nombre: "Carlos Ramírez", Email: "carlos@sushihouse.com", Rol: types.RolUsuario}, "secreta123")
		if err != nil {
			t.Fatalf("AgregarUsuario failed: %v", err)
		}

		nueva := "renovada456"
		if err := store.ActualizarUsuario(guardado.ID, types.UsuarioPatch{Contrasena: &nueva}); err != nil {
			t.Fatalf("ActualizarUsuario failed: %v", err)
		}
		if store.VerificarContrasena(guardado.ID, "secreta123") {
			t.Error("expected the old password to stop verifying")
		}
		if !store.VerificarContrasena(guardado.ID, "renovada456") {
			t.Error("expected the new password to verify")
		}
	})
}

func TestEliminarUsuario(t *testing.T) {
	t.Run("ProtectsRootAdmin", func(t *testing.T) {
		store := testutil.NuevaTiendaSembrada(t)

		if err := store.EliminarUsuario(1); !errors.Is(err, inventario.ErrUsuarioProtegido) {
			t.Fatalf("expected ErrUsuarioProtegido, got %v", err)
		}
		if got := len(store.GetUsuarios()); got != 2 {
			t.Errorf("expected users untouched after rejected delete, got %d", got)
		}
	})

	t.Run("DeletesRegularUser", func(t *testing.T) {
		store := testutil.NuevaTiendaSembrada(t)

		if err := store.EliminarUsuario(2); err != nil {
			t.Fatalf("EliminarUsuario failed: %v", err)
		}
		for _, u := range store.GetUsuarios() {
			if u.ID == 2 {
				t.Fatal("user 2 still present after delete")
			}
		}
	})

	t.Run("NoEncontrado", func(t *testing.T) {
		store := testutil.NuevaTiendaSembrada(t)

		if err := store.EliminarUsuario(999); !errors.Is(err, inventario.ErrNoEncontrado) {
			t.Errorf("expected ErrNoEncontrado, got %v", err)
		}
	})
}

func TestRegistrarAcceso(t *testing.T) {
	store := testutil.NuevaTiendaSembrada(t)

	if err := store.RegistrarAcceso(2); err != nil {
		t.Fatalf("RegistrarAcceso failed: %v", err)
	}
	for _, u := range store.GetUsuarios() {
		if u.ID == 2 && !u.UltimoAcceso.Equal(testutil.FechaFija) {
			t.Errorf("expected last access %v, got %v", testutil.FechaFija, u.UltimoAcceso)
		}
	}
}

func TestBuscarUsuarios(t *testing.T) {
	store := testutil.NuevaTiendaSembrada(t)

	t.Run("ByRole", func(t *testing.T) {
		resultado := store.BuscarUsuarios("admin")
		if len(resultado) != 1 || resultado[0].ID != 1 {
			t.Errorf("expected only the admin, got %v", resultado)
		}
	})

	t.Run("ByEmail", func(t *testing.T) {
		resultado := store.BuscarUsuarios("maria@")
		if len(resultado) != 1 || resultado[0].ID != 2 {
			t.Errorf("expected only María, got %v", resultado)
		}
	})
}
