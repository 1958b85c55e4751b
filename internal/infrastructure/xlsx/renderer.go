// Package xlsx exporta la vista de reporte como libro de Excel (hoja "Rekap").
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appledger "github.com/jhoicas/sobrickz-opname/internal/application/ledger"
)

// SheetName hoja única del libro exportado.
const SheetName = "Rekap"

const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var _ appledger.ReportRenderer = (*Renderer)(nil)

// Renderer implementa ledger.ReportRenderer con excelize.
// Fila 1 = encabezados; desde la fila 2 una fila por asiento. Las cantidades se
// escriben como números para que la hoja se pueda sumar y filtrar.
type Renderer struct {
	author string
}

// NewRenderer construye el renderer; author va a las propiedades del documento.
func NewRenderer(author string) *Renderer { return &Renderer{author: author} }

// ContentType MIME de .xlsx.
func (r *Renderer) ContentType() string { return contentType }

// Render genera el libro y devuelve sus bytes.
func (r *Renderer) Render(_ context.Context, table *appledger.ReportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: table.Title, Creator: r.author}); err != nil {
		return nil, fmt.Errorf("xlsx: propiedades: %w", err)
	}

	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	for i, row := range table.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = cellValue(v)
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, axis, &cells); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	if err := r.styleHeader(f, len(table.Columns)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// styleHeader encabezado en negrita blanco sobre azul, columnas anchas y fila 1 congelada.
func (r *Renderer) styleHeader(f *excelize.File, cols int) error {
	if cols == 0 {
		return nil
	}
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("xlsx: estilo: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("xlsx: aplicar estilo: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 14); err != nil {
		return fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}
	return f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func cellValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		// sin pérdida: a lo sumo 14 dígitos significativos por los límites de ledger.CheckQuantities
		return d.InexactFloat64()
	}
	return v
}
