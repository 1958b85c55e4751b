package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/ledger"
)

// Formatos de exportación soportados.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ReportTable tabla lista para renderizar. Las celdas son string o decimal.Decimal;
// cada renderer decide cómo escribir los decimales.
type ReportTable struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// ReportRenderer puerto de salida para los formatos de exportación (excelize, maroto).
// Implementaciones sin estado: el resultado depende solo de la tabla.
type ReportRenderer interface {
	Render(ctx context.Context, table *ReportTable) ([]byte, error)
	ContentType() string
}

// ExportFile archivo generado.
type ExportFile struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

// ExportUseCase exporta la vista de reporte de un flujo.
type ExportUseCase struct {
	report    *ReportUseCase
	renderers map[string]ReportRenderer
	log       zerolog.Logger
}

// NewExportUseCase construye el caso de uso; renderers se indexa por formato (FormatXLSX, FormatPDF).
func NewExportUseCase(report *ReportUseCase, renderers map[string]ReportRenderer, log zerolog.Logger) *ExportUseCase {
	return &ExportUseCase{report: report, renderers: renderers, log: log}
}

// Export lee las filas frescas del flujo y las renderiza en el formato pedido.
func (uc *ExportUseCase) Export(ctx context.Context, stream entity.Stream, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato no soportado %q (xlsx o pdf)", domain.ErrInvalidInput, format)
	}
	rows, err := uc.report.ListEntries(ctx, stream)
	if err != nil {
		return nil, err
	}
	table := BuildReportTable(stream, rows)

	b, err := r.Render(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("export: renderizar %s: %w", format, err)
	}
	uc.log.Debug().Str("stream", string(stream)).Str("format", format).Int("rows", len(rows)).Msg("reporte exportado")
	return &ExportFile{
		Bytes:       b,
		Filename:    exportBaseName(stream) + "." + format,
		ContentType: r.ContentType(),
	}, nil
}

// BuildReportTable arma la tabla del flujo sin el ID interno del asiento.
// Piso: Tanggal, Shift, Barang, Awal, In, Out, Akhir, Petugas. Bodega: igual sin Shift.
func BuildReportTable(stream entity.Stream, rows []entity.ReportRow) *ReportTable {
	t := &ReportTable{Title: exportTitle(stream), Rows: make([][]any, 0, len(rows))}
	if stream.HasShift() {
		t.Columns = []string{"Tanggal", "Shift", "Barang", "Awal", "In", "Out", "Akhir", "Petugas"}
	} else {
		t.Columns = []string{"Tanggal", "Barang", "Awal", "In", "Out", "Akhir", "Petugas"}
	}
	for _, r := range rows {
		cells := []any{r.Date.Format(ledger.DateLayout)}
		if stream.HasShift() {
			cells = append(cells, string(r.Shift))
		}
		cells = append(cells, r.ItemName,
			r.Opening, r.Inbound, r.Outgoing, r.Closing,
			r.OperatorName)
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func exportTitle(stream entity.Stream) string {
	if stream == entity.StreamWarehouse {
		return "Rekap SO Gudang"
	}
	return "Rekap SO Harian"
}

func exportBaseName(stream entity.Stream) string {
	if stream == entity.StreamWarehouse {
		return "rekap_gudang"
	}
	return "rekap_harian"
}
