// Package ledger contiene las reglas puras del libro de conteos (servicio de dominio).
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sobrickz-opname/internal/domain"
)

// DateLayout formato de fecha del libro (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Outgoing calcula la salida derivada del conteo.
// Salida = (Apertura + Entrada) - Cierre. Puede ser negativa si el cierre supera lo esperado.
func Outgoing(opening, inbound, closing decimal.Decimal) decimal.Decimal {
	return opening.Add(inbound).Sub(closing)
}

// QuantityScale decimales que guarda el libro (columnas NUMERIC(14,3)).
const QuantityScale = 3

// maxQuantity cota exclusiva de magnitud: 14 dígitos con 3 decimales.
var maxQuantity = decimal.New(1, 11)

// CheckQuantities aplica la política de cantidades: apertura, entrada y cierre >= 0,
// con a lo sumo QuantityScale decimales y magnitud menor que 10^11. La salida derivada
// también debe caber en la columna para que la identidad se guarde exacta.
// Una salida negativa es válida.
func CheckQuantities(opening, inbound, closing decimal.Decimal) error {
	if opening.IsNegative() || inbound.IsNegative() || closing.IsNegative() {
		return domain.ErrNegativeQuantity
	}
	for _, q := range []decimal.Decimal{opening, inbound, closing, Outgoing(opening, inbound, closing)} {
		if !fits(q) {
			return domain.ErrQuantityOutOfRange
		}
	}
	return nil
}

// fits indica si q se guarda sin redondeo ni desborde.
func fits(q decimal.Decimal) bool {
	return q.Equal(q.Truncate(QuantityScale)) && q.Abs().LessThan(maxQuantity)
}

// Day normaliza t a la fecha calendario (medianoche UTC) conservando año, mes y día de t.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate interpreta "YYYY-MM-DD".
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}
