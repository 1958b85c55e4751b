package ledger

import "github.com/jhoicas/sobrickz-opname/internal/domain/entity"

// Newer indica si a es más reciente que b para el arrastre de apertura.
// Fecha mayor gana; en la misma fecha gana el turno posterior (Evening sobre Morning)
// y luego el ID mayor (último insertado).
func Newer(a, b *entity.LedgerEntry) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if a.Shift.Rank() != b.Shift.Rank() {
		return a.Shift.Rank() > b.Shift.Rank()
	}
	return a.ID > b.ID
}

// ReportBefore orden de la vista de reporte: fecha descendente, turno ascendente
// (Morning antes que Evening) y luego ID ascendente.
// En bodega el turno está vacío y el criterio se reduce a fecha e ID.
func ReportBefore(a, b *entity.ReportRow) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if a.Shift.Rank() != b.Shift.Rank() {
		return a.Shift.Rank() < b.Shift.Rank()
	}
	return a.EntryID < b.EntryID
}
