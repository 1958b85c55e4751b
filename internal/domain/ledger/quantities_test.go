package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestOutgoing(t *testing.T) {
	cases := []struct {
		name                      string
		opening, inbound, closing string
		want                      string
	}{
		{"consumo normal", "10", "5", "12", "3"},
		{"sin movimiento", "4", "0", "4", "0"},
		{"sobrante contado", "2", "1", "5", "-2"},
		{"decimales exactos", "0.1", "0.2", "0.3", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.Outgoing(dec(tc.opening), dec(tc.inbound), dec(tc.closing))
			assert.True(t, got.Equal(dec(tc.want)), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}

func TestCheckQuantities_RechazaNegativos(t *testing.T) {
	require.NoError(t, ledger.CheckQuantities(dec("0"), dec("0"), dec("0")))

	err := ledger.CheckQuantities(dec("-1"), dec("0"), dec("0"))
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "debe envolver ErrInvalidInput")

	assert.Error(t, ledger.CheckQuantities(dec("0"), dec("-0.5"), dec("0")))
	assert.Error(t, ledger.CheckQuantities(dec("0"), dec("0"), dec("-3")))
}

func TestCheckQuantities_EscalaYMagnitud(t *testing.T) {
	cases := []struct {
		name                      string
		opening, inbound, closing string
		ok                        bool
	}{
		{"tres decimales", "0.125", "1.5", "0.001", true},
		{"ceros finales no cuentan", "1.0000", "0", "0", true},
		{"límite superior", "99999999999.999", "0", "0", true},
		{"cuatro decimales en apertura", "0.0005", "0.0005", "0", false},
		{"cuatro decimales en cierre", "1", "0", "0.0001", false},
		{"apertura de 10^11", "100000000000", "0", "0", false},
		{"cierre de 10^11", "0", "0", "100000000000", false},
		{"salida desborda aunque cada cantidad cabe", "60000000000", "60000000000", "0", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ledger.CheckQuantities(dec(tc.opening), dec(tc.inbound), dec(tc.closing))
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrQuantityOutOfRange)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestNewer_DesempatePorTurnoEID(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	morning := &entity.LedgerEntry{ID: 5, Date: d1, Shift: entity.ShiftMorning}
	evening := &entity.LedgerEntry{ID: 1, Date: d1, Shift: entity.ShiftEvening}
	nextDay := &entity.LedgerEntry{ID: 0, Date: d2, Shift: entity.ShiftMorning}

	assert.True(t, ledger.Newer(evening, morning), "Evening gana sobre Morning el mismo día")
	assert.False(t, ledger.Newer(morning, evening))
	assert.True(t, ledger.Newer(nextDay, evening), "la fecha mayor gana siempre")

	a := &entity.LedgerEntry{ID: 7, Date: d1}
	b := &entity.LedgerEntry{ID: 3, Date: d1}
	assert.True(t, ledger.Newer(a, b), "sin turno gana el ID mayor")
}

func TestReportBefore(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	older := &entity.ReportRow{EntryID: 9, Date: d1, Shift: entity.ShiftMorning}
	newerEvening := &entity.ReportRow{EntryID: 1, Date: d2, Shift: entity.ShiftEvening}
	newerMorning := &entity.ReportRow{EntryID: 2, Date: d2, Shift: entity.ShiftMorning}

	assert.True(t, ledger.ReportBefore(newerEvening, older), "fecha descendente")
	assert.True(t, ledger.ReportBefore(newerMorning, newerEvening), "Morning antes que Evening")
}

func TestParseDate(t *testing.T) {
	d, err := ledger.ParseDate("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), d)

	_, err = ledger.ParseDate("02/01/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
