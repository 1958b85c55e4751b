package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sobrickz-opname/internal/application/dto"
	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/ledger"
	"github.com/jhoicas/sobrickz-opname/internal/domain/repository"
)

// EngineUseCase motor del libro: apertura por arrastre y registro de conteos
// para los dos flujos independientes (piso y bodega).
type EngineUseCase struct {
	repo repository.LedgerRepository
	log  zerolog.Logger
}

// NewEngineUseCase construye el motor.
func NewEngineUseCase(repo repository.LedgerRepository, log zerolog.Logger) *EngineUseCase {
	return &EngineUseCase{repo: repo, log: log}
}

// RecordEntryInput entrada para registrar un conteo.
type RecordEntryInput struct {
	Stream       entity.Stream
	Date         time.Time
	Shift        entity.Shift // obligatorio en piso, vacío en bodega
	ItemID       int64
	Opening      decimal.Decimal
	Inbound      decimal.Decimal
	Closing      decimal.Decimal
	OperatorName string
}

// GetOpeningDefault devuelve el cierre del asiento más reciente del ítem con fecha
// estrictamente anterior a date, o cero si no existe. El turno no participa en la búsqueda.
func (uc *EngineUseCase) GetOpeningDefault(ctx context.Context, stream entity.Stream, itemID int64, date time.Time) (decimal.Decimal, error) {
	if !stream.Valid() || itemID <= 0 {
		return decimal.Zero, domain.ErrInvalidInput
	}
	prev, err := uc.repo.LatestBefore(ctx, stream, itemID, ledger.Day(date))
	if err != nil {
		return decimal.Zero, fmt.Errorf("ledger: apertura por defecto: %w", err)
	}
	if prev == nil {
		return decimal.Zero, nil
	}
	return prev.Closing, nil
}

// RecordEntry valida la entrada, deriva la salida y agrega el asiento al flujo.
// No verifica que el ítem exista: un ID huérfano se guarda tal cual.
func (uc *EngineUseCase) RecordEntry(ctx context.Context, in RecordEntryInput) (*entity.LedgerEntry, error) {
	if err := validateRecord(in); err != nil {
		return nil, err
	}

	entry := &entity.LedgerEntry{
		Stream:       in.Stream,
		Date:         ledger.Day(in.Date),
		Shift:        in.Shift,
		ItemID:       in.ItemID,
		Opening:      in.Opening,
		Inbound:      in.Inbound,
		Outgoing:     ledger.Outgoing(in.Opening, in.Inbound, in.Closing),
		Closing:      in.Closing,
		OperatorName: strings.TrimSpace(in.OperatorName),
	}
	if err := uc.repo.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("ledger: registrar asiento: %w", err)
	}

	uc.log.Info().
		Str("stream", string(entry.Stream)).
		Int64("entry_id", entry.ID).
		Int64("item_id", entry.ItemID).
		Str("date", entry.Date.Format(ledger.DateLayout)).
		Str("outgoing", entry.Outgoing.String()).
		Msg("conteo registrado")
	return entry, nil
}

// Preview calcula la salida sin persistir (mismo cálculo y política que RecordEntry).
func (uc *EngineUseCase) Preview(in dto.PreviewRequest) (*dto.PreviewResponse, error) {
	if err := ledger.CheckQuantities(in.Opening, in.Inbound, in.Closing); err != nil {
		return nil, err
	}
	out := ledger.Outgoing(in.Opening, in.Inbound, in.Closing)
	return &dto.PreviewResponse{
		Opening:  in.Opening,
		Inbound:  in.Inbound,
		Closing:  in.Closing,
		Outgoing: out,
		Formula:  fmt.Sprintf("Out = (%s + %s) - %s = %s", in.Opening, in.Inbound, in.Closing, out),
	}, nil
}

// RecordEntryFromRequest adapta el request HTTP a RecordEntry.
// operatorName es el nombre del operador autenticado; se usa si el body no trae uno.
func (uc *EngineUseCase) RecordEntryFromRequest(ctx context.Context, stream entity.Stream, operatorName string, in dto.RecordEntryRequest) (*dto.EntryResponse, error) {
	date, err := ledger.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	name := in.OperatorName
	if strings.TrimSpace(name) == "" {
		name = operatorName
	}
	entry, err := uc.RecordEntry(ctx, RecordEntryInput{
		Stream:       stream,
		Date:         date,
		Shift:        entity.Shift(in.Shift),
		ItemID:       in.ItemID,
		Opening:      in.Opening,
		Inbound:      in.Inbound,
		Closing:      in.Closing,
		OperatorName: name,
	})
	if err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

func validateRecord(in RecordEntryInput) error {
	if !in.Stream.Valid() || in.ItemID <= 0 || in.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	if in.Stream.HasShift() {
		if !in.Shift.Valid() {
			return fmt.Errorf("%w: turno requerido (Morning o Evening)", domain.ErrInvalidInput)
		}
	} else if in.Shift != "" {
		return fmt.Errorf("%w: los conteos de bodega no llevan turno", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.OperatorName) == "" {
		return fmt.Errorf("%w: nombre del operador requerido", domain.ErrInvalidInput)
	}
	return ledger.CheckQuantities(in.Opening, in.Inbound, in.Closing)
}

func toEntryResponse(e *entity.LedgerEntry) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:           e.ID,
		Stream:       string(e.Stream),
		Date:         e.Date.Format(ledger.DateLayout),
		Shift:        string(e.Shift),
		ItemID:       e.ItemID,
		Opening:      e.Opening,
		Inbound:      e.Inbound,
		Outgoing:     e.Outgoing,
		Closing:      e.Closing,
		OperatorName: e.OperatorName,
	}
}
