package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create inserta el ítem y asigna su ID.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO items (name, unit) VALUES ($1, $2) RETURNING id`,
		item.Name, item.Unit,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT id, name, unit FROM items WHERE id = $1`, id)
}

// GetByName obtiene un ítem por nombre exacto; nil si no existe.
func (r *ItemRepo) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT id, name, unit FROM items WHERE name = $1`, name)
}

func (r *ItemRepo) getOne(ctx context.Context, query string, arg any) (*entity.Item, error) {
	var it entity.Item
	if err := r.q.QueryRow(ctx, query, arg).Scan(&it.ID, &it.Name, &it.Unit); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// List devuelve todo el catálogo ordenado por nombre.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, unit FROM items ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Unit); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteByName borra por nombre y devuelve las filas afectadas.
func (r *ItemRepo) DeleteByName(ctx context.Context, name string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM items WHERE name = $1`, name)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	return tag.RowsAffected(), nil
}
