package repository

import (
	"context"

	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para operadores (DIP).
type UserRepository interface {
	// Create persiste el usuario y asigna user.ID. Email repetido => domain.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
