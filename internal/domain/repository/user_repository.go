package repository

import "github.com/jhoicas/nyx-os/internal/domain/entity"

// UserRepository define el puerto de lectura de usuarios de sesión (DIP).
// Devuelve (nil, nil) si el usuario no existe.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	// FindByUsuario busca por nombre de acceso (login).
	FindByUsuario(usuario string) (*entity.User, error)
}
