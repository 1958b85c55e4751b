// Package memory almacenamiento en proceso para DB_DRIVER=memory y para las pruebas.
// Replica la semántica de los repos PostgreSQL: IDs crecientes, LEFT JOIN con el
// catálogo, mismo orden de listado y mismo desempate de "último conteo".
package memory

import (
	"sync"

	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/repository"
)

// Store estado compartido por los tres repositorios; un único mutex protege todo.
type Store struct {
	mu sync.RWMutex

	items   []entity.Item
	entries map[entity.Stream][]entity.LedgerEntry
	users   []entity.User

	nextItemID  int64
	nextEntryID map[entity.Stream]int64
	nextUserID  int64
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		entries: map[entity.Stream][]entity.LedgerEntry{
			entity.StreamFloor:     nil,
			entity.StreamWarehouse: nil,
		},
		nextEntryID: map[entity.Stream]int64{},
	}
}

// Items repositorio del catálogo sobre el store.
func (s *Store) Items() repository.ItemRepository { return &ItemRepo{s: s} }

// Ledger repositorio de los dos flujos sobre el store.
func (s *Store) Ledger() repository.LedgerRepository { return &LedgerRepo{s: s} }

// Users repositorio de operadores sobre el store.
func (s *Store) Users() repository.UserRepository { return &UserRepo{s: s} }

// itemByID búsqueda lineal; se llama con el lock tomado.
func (s *Store) itemByID(id int64) (entity.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.Item{}, false
}
