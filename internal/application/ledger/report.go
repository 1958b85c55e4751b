package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/sobrickz-opname/internal/application/dto"
	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/ledger"
	"github.com/jhoicas/sobrickz-opname/internal/domain/repository"
)

// ReportUseCase vista de reporte: filas desnormalizadas por flujo, borrado de asientos
// y resumen de consumo por ítem. Cada llamada lee de nuevo; no hay caché.
type ReportUseCase struct {
	repo repository.LedgerRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewReportUseCase construye la vista de reporte.
func NewReportUseCase(repo repository.LedgerRepository, log zerolog.Logger) *ReportUseCase {
	return &ReportUseCase{repo: repo, log: log, now: time.Now}
}

// ListEntries devuelve las filas del flujo unidas con el catálogo (left join).
// Piso: fecha desc, turno (Morning, Evening); bodega: fecha desc.
func (uc *ReportUseCase) ListEntries(ctx context.Context, stream entity.Stream) ([]entity.ReportRow, error) {
	if !stream.Valid() {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.repo.ListRows(ctx, stream)
	if err != nil {
		return nil, fmt.Errorf("report: listar asientos: %w", err)
	}
	return rows, nil
}

// List igual que ListEntries pero en forma de DTO para HTTP.
func (uc *ReportUseCase) List(ctx context.Context, stream entity.Stream) (*dto.ReportListResponse, error) {
	rows, err := uc.ListEntries(ctx, stream)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReportRowDTO{
			EntryID:      r.EntryID,
			Date:         r.Date.Format(ledger.DateLayout),
			Shift:        string(r.Shift),
			ItemName:     r.ItemName,
			Opening:      r.Opening,
			Inbound:      r.Inbound,
			Outgoing:     r.Outgoing,
			Closing:      r.Closing,
			OperatorName: r.OperatorName,
		})
	}
	return &dto.ReportListResponse{Stream: string(stream), Total: len(out), Rows: out}, nil
}

// DeleteEntry elimina un asiento. Borrar un ID inexistente no es error.
func (uc *ReportUseCase) DeleteEntry(ctx context.Context, stream entity.Stream, id int64) error {
	if !stream.Valid() || id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.Delete(ctx, stream, id); err != nil {
		return fmt.Errorf("report: borrar asiento: %w", err)
	}
	uc.log.Info().Str("stream", string(stream)).Int64("entry_id", id).Msg("asiento eliminado")
	return nil
}

// Summary totales de entrada y salida por ítem en el período, con el último cierre contado.
func (uc *ReportUseCase) Summary(ctx context.Context, stream entity.Stream, req dto.SummaryRequest) (*dto.SummaryResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrInvalidInput
	}
	from, to, err := uc.parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.Summarize(ctx, stream, from, to)
	if err != nil {
		return nil, fmt.Errorf("report: resumen: %w", err)
	}
	items := make([]dto.ItemSummaryDTO, 0, len(list))
	for _, s := range list {
		items = append(items, dto.ItemSummaryDTO{
			ItemID:        s.ItemID,
			ItemName:      s.ItemName,
			ItemUnit:      s.ItemUnit,
			EntryCount:    s.EntryCount,
			TotalInbound:  s.TotalInbound,
			TotalOutgoing: s.TotalOutgoing,
			LastClosing:   s.LastClosing,
			LastDate:      s.LastDate.Format(ledger.DateLayout),
		})
	}
	return &dto.SummaryResponse{
		Stream: string(stream),
		Period: dto.PeriodDTO{
			StartDate: from.Format(ledger.DateLayout),
			EndDate:   to.Format(ledger.DateLayout),
		},
		Items: items,
	}, nil
}

// parsePeriod aplica los defaults (primer día del mes actual .. hoy) y valida el orden.
func (uc *ReportUseCase) parsePeriod(start, end string) (time.Time, time.Time, error) {
	today := ledger.Day(uc.now())
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := today

	var err error
	if start != "" {
		if from, err = ledger.ParseDate(start); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}
	if end != "" {
		if to, err = ledger.ParseDate(end); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date posterior a end_date", domain.ErrInvalidInput)
	}
	return from, to, nil
}
