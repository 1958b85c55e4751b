package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appledger "github.com/jhoicas/sobrickz-opname/internal/application/ledger"
	"github.com/jhoicas/sobrickz-opname/internal/infrastructure/xlsx"
)

func TestRender_LibroRelegible(t *testing.T) {
	table := &appledger.ReportTable{
		Title:   "Rekap SO Harian",
		Columns: []string{"Tanggal", "Shift", "Barang", "Awal", "In", "Out", "Akhir", "Petugas"},
		Rows: [][]any{
			{"2024-01-02", "Morning", "Gula", decimal.NewFromInt(12), decimal.NewFromInt(0), decimal.RequireFromString("1.5"), decimal.RequireFromString("10.5"), "Sari"},
			{"2024-01-01", "Morning", "Gula", decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.NewFromInt(3), decimal.NewFromInt(12), "Budi"},
		},
	}

	r := xlsx.NewRenderer("Sobrickz")
	assert.Contains(t, r.ContentType(), "spreadsheetml")

	b, err := r.Render(context.Background(), table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetName}, f.GetSheetList())

	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "encabezado + 2 filas")
	assert.Equal(t, table.Columns, rows[0])
	assert.Equal(t, []string{"2024-01-02", "Morning", "Gula", "12", "0", "1.5", "10.5", "Sari"}, rows[1])
	assert.Equal(t, "Budi", rows[2][7])

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Rekap SO Harian", props.Title)
}

func TestRender_CantidadesNumericas(t *testing.T) {
	table := &appledger.ReportTable{
		Title:   "Rekap SO Gudang",
		Columns: []string{"Tanggal", "Barang", "Awal", "In", "Out", "Akhir", "Petugas"},
		Rows: [][]any{
			{"2024-01-01", "Tepung", decimal.NewFromInt(20), decimal.NewFromInt(10), decimal.NewFromInt(-2), decimal.NewFromInt(32), "Andi"},
		},
	}
	b, err := xlsx.NewRenderer("").Render(context.Background(), table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	// Si las cantidades fueran texto, SUM daría 0.
	require.NoError(t, f.SetCellFormula(xlsx.SheetName, "I2", "SUM(C2:F2)"))
	sum, err := f.CalcCellValue(xlsx.SheetName, "I2")
	require.NoError(t, err)
	assert.Equal(t, "60", sum)

	v, err := f.GetCellValue(xlsx.SheetName, "E2")
	require.NoError(t, err)
	assert.Equal(t, "-2", v)
}

func TestRender_SinFilas(t *testing.T) {
	table := &appledger.ReportTable{Title: "Rekap SO Gudang", Columns: []string{"Tanggal", "Barang"}}
	b, err := xlsx.NewRenderer("").Render(context.Background(), table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
