package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stream identifica el flujo de conteo. Cada flujo es un libro independiente.
type Stream string

const (
	StreamFloor     Stream = "floor"     // piso del café (SO harian), dos turnos por día
	StreamWarehouse Stream = "warehouse" // bodega central (SO gudang), un conteo por día
)

// Valid indica si s es un flujo conocido.
func (s Stream) Valid() bool {
	return s == StreamFloor || s == StreamWarehouse
}

// HasShift indica si los asientos del flujo llevan turno.
func (s Stream) HasShift() bool {
	return s == StreamFloor
}

// Shift turno del conteo de piso.
type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftEvening Shift = "Evening"
)

// Valid indica si el turno es uno de los permitidos.
func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftEvening
}

// Rank orden del turno dentro de un mismo día (Morning primero).
// Un turno desconocido o vacío ordena antes que ambos.
func (s Shift) Rank() int {
	switch s {
	case ShiftMorning:
		return 1
	case ShiftEvening:
		return 2
	default:
		return 0
	}
}

// LedgerEntry asiento inmutable del libro de conteos.
// Se cumple Outgoing = Opening + Inbound - Closing al momento de insertar.
// Outgoing puede ser negativo (sobrante contado).
type LedgerEntry struct {
	ID           int64
	Stream       Stream
	Date         time.Time // solo fecha (00:00 UTC)
	Shift        Shift     // vacío en bodega
	ItemID       int64     // referencia sin integridad referencial al borrar ítems
	Opening      decimal.Decimal
	Inbound      decimal.Decimal
	Outgoing     decimal.Decimal
	Closing      decimal.Decimal
	OperatorName string
}

// ReportRow fila desnormalizada para la vista de reporte (left join con Item).
// EntryID se conserva para borrar y se excluye de las exportaciones.
type ReportRow struct {
	EntryID      int64
	Date         time.Time
	Shift        Shift
	ItemName     string // vacío si el ítem fue borrado
	Opening      decimal.Decimal
	Inbound      decimal.Decimal
	Outgoing     decimal.Decimal
	Closing      decimal.Decimal
	OperatorName string
}

// ItemSummary totales por ítem en un período.
type ItemSummary struct {
	ItemID        int64
	ItemName      string
	ItemUnit      string
	EntryCount    int
	TotalInbound  decimal.Decimal
	TotalOutgoing decimal.Decimal
	LastClosing   decimal.Decimal
	LastDate      time.Time
}
