package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/sobrickz-opname/internal/application/dto"
	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/repository"
)

// CatalogUseCase alta, baja y listado de ítems contables.
type CatalogUseCase struct {
	repo repository.ItemRepository
	log  zerolog.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ItemRepository, log zerolog.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: log}
}

// AddItem agrega un ítem. Nombre y unidad se recortan y son obligatorios;
// un nombre ya registrado devuelve domain.ErrDuplicate.
func (uc *CatalogUseCase) AddItem(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)
	if name == "" || unit == "" {
		return nil, fmt.Errorf("%w: nombre y unidad son obligatorios", domain.ErrInvalidInput)
	}
	item := &entity.Item{Name: name, Unit: unit}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("item_id", item.ID).Str("name", item.Name).Msg("ítem agregado")
	return toItemResponse(item), nil
}

// RemoveItem borra el ítem por nombre. Los asientos que lo referencian quedan intactos
// (se listan con nombre vacío).
func (uc *CatalogUseCase) RemoveItem(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	n, err := uc.repo.DeleteByName(ctx, name)
	if err != nil {
		return fmt.Errorf("catalog: borrar ítem: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	uc.log.Info().Str("name", name).Msg("ítem eliminado")
	return nil
}

// ListItems devuelve el catálogo ordenado por nombre.
func (uc *CatalogUseCase) ListItems(ctx context.Context) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: listar ítems: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{ID: it.ID, Name: it.Name, Unit: it.Unit}
}
