package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo catálogo en memoria.
type ItemRepo struct {
	s *Store
}

func (r *ItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.items {
		if it.Name == item.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.nextItemID++
	item.ID = r.s.nextItemID
	r.s.items = append(r.s.items, *item)
	return nil
}

func (r *ItemRepo) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if it, ok := r.s.itemByID(id); ok {
		return &it, nil
	}
	return nil, nil
}

func (r *ItemRepo) GetByName(_ context.Context, name string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, it := range r.s.items {
		if it.Name == name {
			it := it
			return &it, nil
		}
	}
	return nil, nil
}

func (r *ItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		it := it
		list = append(list, &it)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *ItemRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.items[:0]
	var n int64
	for _, it := range r.s.items {
		if it.Name == name {
			n++
			continue
		}
		kept = append(kept, it)
	}
	r.s.items = kept
	return n, nil
}
