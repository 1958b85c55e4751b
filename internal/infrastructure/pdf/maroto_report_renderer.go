// Package pdf genera el reporte de conteos (rekap) en PDF con Maroto v2.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  Título del reporte                      Dicetak: dd/mm/aaaa │  <- se repite
//	│  Tanggal | Shift | Barang | Awal | In | Out | Akhir | Petugas │  <- se repite
//	│  ──────────────────────────────────────────────────────────  │
//	│  filas con cuadrícula                                        │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appledger "github.com/jhoicas/sobrickz-opname/internal/application/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGrid    = &props.Color{Red: 180, Green: 180, Blue: 180}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// columnWeights ancho relativo por columna; lo que no esté aquí pesa 2.
var columnWeights = map[string]int{
	"Barang":  4,
	"Petugas": 3,
}

const contentType = "application/pdf"

var _ appledger.ReportRenderer = (*MarotoReportRenderer)(nil)

// MarotoReportRenderer implementa ledger.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct {
	author  string
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoReportRenderer construye el renderer. Los números salen con formato indonesio (1.234,5).
func NewMarotoReportRenderer(author string) *MarotoReportRenderer {
	return &MarotoReportRenderer{
		author:  author,
		printer: message.NewPrinter(language.Indonesian),
		now:     time.Now,
	}
}

// ContentType MIME del documento.
func (g *MarotoReportRenderer) ContentType() string { return contentType }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) Render(_ context.Context, table *appledger.ReportTable) ([]byte, error) {
	sizes := gridSizes(table.Columns)
	grid := 0
	for _, s := range sizes {
		grid += s
	}
	if grid == 0 {
		return nil, fmt.Errorf("pdf: la tabla no tiene columnas")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(grid).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(table.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	// Título y encabezado de la tabla se repiten en cada página.
	if err := m.RegisterHeader(
		titleRow(table.Title, g.now(), grid),
		tableHeaderRow(table.Columns, sizes),
	); err != nil {
		return nil, fmt.Errorf("pdf: registrar encabezado: %w", err)
	}

	for _, r := range g.tableBodyRows(table.Rows, sizes) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string, generated time.Time, grid int) core.Row {
	left := grid * 2 / 3
	return row.New(14).Add(
		col.New(left).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		})),
		col.New(grid-left).Add(text.New("Dicetak: "+generated.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 5,
		})),
	)
}

// tableHeaderRow cabecera en negrita, blanco sobre azul.
func tableHeaderRow(columns []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, c := range columns {
		cols = append(cols, col.New(sizes[i]).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorWhite, Top: 2,
		})).WithStyle(&props.Cell{
			BackgroundColor: colorPrimary,
			BorderType:      border.Full,
			BorderColor:     colorGrid,
		}))
	}
	return row.New(8).Add(cols...)
}

// tableBodyRows una fila con cuadrícula por asiento; los decimales se alinean a la derecha.
func (g *MarotoReportRenderer) tableBodyRows(rows [][]any, sizes []int) []core.Row {
	cell := &props.Cell{BorderType: border.Full, BorderColor: colorGrid}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		cols := make([]core.Col, 0, len(r))
		for i, v := range r {
			if i >= len(sizes) {
				break
			}
			label, a := g.cellText(v)
			cols = append(cols, col.New(sizes[i]).Add(text.New(label, props.Text{
				Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
			})).WithStyle(cell))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func gridSizes(columns []string) []int {
	sizes := make([]int, len(columns))
	for i, c := range columns {
		if w, ok := columnWeights[c]; ok {
			sizes[i] = w
		} else {
			sizes[i] = 2
		}
	}
	return sizes
}

func (g *MarotoReportRenderer) cellText(v any) (string, align.Type) {
	switch x := v.(type) {
	case decimal.Decimal:
		return g.formatQty(x), align.Right
	case string:
		return x, align.Left
	default:
		return fmt.Sprint(x), align.Left
	}
}

// formatQty separador de miles "." y decimal "," con hasta 3 decimales: 1234.5 -> "1.234,5".
// El paso por float64 no pierde dígitos mientras valgan los límites de ledger.CheckQuantities.
func (g *MarotoReportRenderer) formatQty(d decimal.Decimal) string {
	return g.printer.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(3)))
}
