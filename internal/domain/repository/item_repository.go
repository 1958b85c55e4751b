package repository

import (
	"context"

	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia del catálogo de ítems (DIP).
type ItemRepository interface {
	// Create persiste el ítem y asigna item.ID. Nombre repetido => domain.ErrDuplicate.
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	// DeleteByName borra por nombre y devuelve cuántas filas eliminó.
	// No toca los asientos del libro que referencian al ítem.
	DeleteByName(ctx context.Context, name string) (int64, error)
}
