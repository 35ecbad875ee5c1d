package inventario

import (
	"fmt"

	"github.com/Aguila09/Sushi-House-Sistema-de-inventario/types"
)

// GetUsuarios returns the user collection, or an empty slice when the key is
// absent.
func (s *Store) GetUsuarios() []types.Usuario {
	var usuarios []types.Usuario
	if !s.Get(ClaveUsuarios, &usuarios) || usuarios == nil {
		return []types.Usuario{}
	}
	return usuarios
}

// SetUsuarios replaces the whole user collection.
func (s *Store) SetUsuarios(usuarios []types.Usuario) bool {
	return s.Set(ClaveUsuarios, usuarios)
}

// AgregarUsuario assigns the next id, hashes the password through the
// configured hasher, stamps the creation time and persists the user. The
// plain-text password is never stored.
func (s *Store) AgregarUsuario(u types.Usuario, contrasena string) (types.Usuario, error) {
	usuarios := s.GetUsuarios()
	u.ID = siguienteID(usuarios, func(u types.Usuario) int { return u.ID })
	u.FechaCreacion = s.now()
	if u.Estado == "" {
		u.Estado = types.EstadoActivo
	}
	if contrasena != "" {
		hash, err := s.hasher.Hash(contrasena)
		if err != nil {
			return types.Usuario{}, fmt.Errorf("no se pudo proteger la contraseña: %w", err)
		}
		u.ContrasenaHash = hash
	}
	usuarios = append(usuarios, u)
	if err := s.setJSON(ClaveUsuarios, usuarios); err != nil {
		return types.Usuario{}, fmt.Errorf("no se pudo guardar el usuario: %w", err)
	}
	return u, nil
}

// ActualizarUsuario shallow-merges the patch over the stored record. The
// stored credential is kept unless the patch carries a new password, which is
// hashed before the write.
func (s *Store) ActualizarUsuario(id int, patch types.UsuarioPatch) error {
	usuarios := s.GetUsuarios()
	for i := range usuarios {
		if usuarios[i].ID != id {
			continue
		}
		u := &usuarios[i]
		if patch.Nombre != nil {
			u.Nombre = *patch.Nombre
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Rol != nil {
			u.Rol = *patch.Rol
		}
		if patch.Estado != nil {
			u.Estado = *patch.Estado
		}
		if patch.Permisos != nil {
			u.Permisos = *patch.Permisos
		}
		if patch.UltimoAcceso != nil {
			u.UltimoAcceso = *patch.UltimoAcceso
		}
		if patch.Contrasena != nil && *patch.Contrasena != "" {
			hash, err := s.hasher.Hash(*patch.Contrasena)
			if err != nil {
				return fmt.Errorf("no se pudo proteger la contraseña: %w", err)
			}
			u.ContrasenaHash = hash
		}
		u.FechaActualizacion = s.now()
		if err := s.setJSON(ClaveUsuarios, usuarios); err != nil {
			return fmt.Errorf("no se pudo guardar el usuario: %w", err)
		}
		return nil
	}
	return ErrNoEncontrado
}

// EliminarUsuario removes the user with the given id. The root admin (id 1)
// is rejected with ErrUsuarioProtegido before the store is touched.
func (s *Store) EliminarUsuario(id int) error {
	if id == 1 {
		return ErrUsuarioProtegido
	}
	usuarios := s.GetUsuarios()
	restantes := make([]types.Usuario, 0, len(usuarios))
	for _, u := range usuarios {
		if u.ID != id {
			restantes = append(restantes, u)
		}
	}
	if len(restantes) == len(usuarios) {
		return ErrNoEncontrado
	}
	if err := s.setJSON(ClaveUsuarios, restantes); err != nil {
		return fmt.Errorf("no se pudo eliminar el usuario: %w", err)
	}
	return nil
}

// BuscarUsuarios returns the users whose name, email or role contains the
// term, case-insensitively. An empty term returns all.
func (s *Store) BuscarUsuarios(termino string) []types.Usuario {
	usuarios := s.GetUsuarios()
	if termino == "" {
		return usuarios
	}
	resultado := make([]types.Usuario, 0, len(usuarios))
	for _, u := range usuarios {
		if coincide(u.Nombre, termino) || coincide(u.Email, termino) || coincide(string(u.Rol), termino) {
			resultado = append(resultado, u)
		}
	}
	return resultado
}

// RegistrarAcceso stamps the user's last-access time with the store clock.
func (s *Store) RegistrarAcceso(id int) error {
	ahora := s.now()
	return s.ActualizarUsuario(id, types.UsuarioPatch{UltimoAcceso: &ahora})
}

// VerificarContrasena checks a plain-text password against the stored hash
// for the user. Users without a credential never verify.
func (s *Store) VerificarContrasena(id int, contrasena string) bool {
	for _, u := range s.GetUsuarios() {
		if u.ID == id {
			return u.ContrasenaHash != "" && s.hasher.Verify(u.ContrasenaHash, contrasena)
		}
	}
	return false
}
