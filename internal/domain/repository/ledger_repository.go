package repository

import (
	"context"
	"time"

	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
)

// LedgerRepository puerto de persistencia de los libros de conteo (piso y bodega).
// Cada método recibe el flujo; las implementaciones guardan cada flujo por separado.
type LedgerRepository interface {
	// LatestBefore devuelve el asiento más reciente del ítem con fecha estrictamente
	// anterior a before, o nil si no hay ninguno. Desempate: turno posterior y luego ID mayor.
	LatestBefore(ctx context.Context, stream entity.Stream, itemID int64, before time.Time) (*entity.LedgerEntry, error)

	// Insert agrega un asiento y asigna entry.ID.
	Insert(ctx context.Context, entry *entity.LedgerEntry) error

	// ListRows devuelve las filas del reporte (left join con ítems) ya ordenadas.
	ListRows(ctx context.Context, stream entity.Stream) ([]entity.ReportRow, error)

	// Delete elimina un asiento por ID. Un ID inexistente no es error.
	Delete(ctx context.Context, stream entity.Stream, id int64) error

	// Summarize agrupa por ítem los asientos con fecha en [from, to].
	Summarize(ctx context.Context, stream entity.Stream, from, to time.Time) ([]entity.ItemSummary, error)
}
