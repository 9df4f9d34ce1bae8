package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Store[*entity.User]
	Create(user *entity.User) error
	Update(user *entity.User) error
	// GetByEmail busca en todas las empresas (el email de usuario es
	// único global). Devuelve nil, nil si no existe.
	GetByEmail(email string) (*entity.User, error)
}
