package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// streamTable describe la tabla física de un flujo. Bodega no tiene columna shift:
// shiftExpr y rankExpr la sustituyen por constantes para compartir las consultas.
type streamTable struct {
	name      string
	shiftExpr string
	rankExpr  string
}

var streamTables = map[entity.Stream]streamTable{
	entity.StreamFloor: {
		name:      "floor_entries",
		shiftExpr: "e.shift",
		rankExpr:  "CASE e.shift WHEN 'Evening' THEN 2 WHEN 'Morning' THEN 1 ELSE 0 END",
	},
	entity.StreamWarehouse: {
		name:      "warehouse_entries",
		shiftExpr: "''::text",
		rankExpr:  "0",
	},
}

// LedgerRepo los dos flujos del libro (piso y bodega) sobre PostgreSQL.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

func tableFor(stream entity.Stream) (streamTable, error) {
	t, ok := streamTables[stream]
	if !ok {
		return streamTable{}, fmt.Errorf("%w: flujo desconocido %q", domain.ErrInvalidInput, stream)
	}
	return t, nil
}

// LatestBefore asiento más reciente del ítem con fecha estrictamente anterior a before.
func (r *LedgerRepo) LatestBefore(ctx context.Context, stream entity.Stream, itemID int64, before time.Time) (*entity.LedgerEntry, error) {
	t, err := tableFor(stream)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT e.id, e.entry_date, %s, e.item_id,
		       e.opening_qty, e.inbound_qty, e.outgoing_qty, e.closing_qty, e.operator_name
		FROM %s e
		WHERE e.item_id = $1 AND e.entry_date < $2
		ORDER BY e.entry_date DESC, %s DESC, e.id DESC
		LIMIT 1`, t.shiftExpr, t.name, t.rankExpr)

	var (
		e     entity.LedgerEntry
		shift string
	)
	err = r.q.QueryRow(ctx, query, itemID, before).Scan(
		&e.ID, &e.Date, &shift, &e.ItemID,
		&e.Opening, &e.Inbound, &e.Outgoing, &e.Closing, &e.OperatorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest %s entry: %w", stream, err)
	}
	e.Stream = stream
	e.Shift = entity.Shift(shift)
	return &e, nil
}

// Insert agrega el asiento y asigna su ID.
func (r *LedgerRepo) Insert(ctx context.Context, e *entity.LedgerEntry) error {
	var (
		query string
		args  []any
	)
	switch e.Stream {
	case entity.StreamFloor:
		query = `
			INSERT INTO floor_entries (entry_date, shift, item_id, opening_qty, inbound_qty, outgoing_qty, closing_qty, operator_name)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`
		args = []any{e.Date, string(e.Shift), e.ItemID, e.Opening, e.Inbound, e.Outgoing, e.Closing, e.OperatorName}
	case entity.StreamWarehouse:
		query = `
			INSERT INTO warehouse_entries (entry_date, item_id, opening_qty, inbound_qty, outgoing_qty, closing_qty, operator_name)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`
		args = []any{e.Date, e.ItemID, e.Opening, e.Inbound, e.Outgoing, e.Closing, e.OperatorName}
	default:
		return fmt.Errorf("%w: flujo desconocido %q", domain.ErrInvalidInput, e.Stream)
	}
	if err := r.q.QueryRow(ctx, query, args...).Scan(&e.ID); err != nil {
		return fmt.Errorf("insert %s entry: %w", e.Stream, err)
	}
	return nil
}

// ListRows vista de reporte: asientos con LEFT JOIN al catálogo.
func (r *LedgerRepo) ListRows(ctx context.Context, stream entity.Stream) ([]entity.ReportRow, error) {
	t, err := tableFor(stream)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT e.id, e.entry_date, %s, COALESCE(i.name, ''),
		       e.opening_qty, e.inbound_qty, e.outgoing_qty, e.closing_qty, e.operator_name
		FROM %s e
		LEFT JOIN items i ON i.id = e.item_id
		ORDER BY e.entry_date DESC, %s ASC, e.id ASC`, t.shiftExpr, t.name, t.rankExpr)

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s entries: %w", stream, err)
	}
	defer rows.Close()

	list := make([]entity.ReportRow, 0)
	for rows.Next() {
		var (
			row   entity.ReportRow
			shift string
		)
		if err := rows.Scan(
			&row.EntryID, &row.Date, &shift, &row.ItemName,
			&row.Opening, &row.Inbound, &row.Outgoing, &row.Closing, &row.OperatorName,
		); err != nil {
			return nil, fmt.Errorf("scan %s entry: %w", stream, err)
		}
		row.Shift = entity.Shift(shift)
		list = append(list, row)
	}
	return list, rows.Err()
}

// Delete borra un asiento; un ID inexistente no es error.
func (r *LedgerRepo) Delete(ctx context.Context, stream entity.Stream, id int64) error {
	t, err := tableFor(stream)
	if err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name), id); err != nil {
		return fmt.Errorf("delete %s entry: %w", stream, err)
	}
	return nil
}

// Summarize totales por ítem en [from, to] (inclusive). LastClosing usa el mismo
// desempate que LatestBefore: fecha, turno y luego ID.
func (r *LedgerRepo) Summarize(ctx context.Context, stream entity.Stream, from, to time.Time) ([]entity.ItemSummary, error) {
	t, err := tableFor(stream)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		WITH ranked AS (
			SELECT e.item_id, e.entry_date, e.inbound_qty, e.outgoing_qty, e.closing_qty,
			       ROW_NUMBER() OVER (
			           PARTITION BY e.item_id
			           ORDER BY e.entry_date DESC, %s DESC, e.id DESC
			       ) AS rn
			FROM %s e
			WHERE e.entry_date BETWEEN $1 AND $2
		)
		SELECT r.item_id,
		       COALESCE(i.name, ''),
		       COALESCE(i.unit, ''),
		       COUNT(*),
		       SUM(r.inbound_qty),
		       SUM(r.outgoing_qty),
		       MAX(r.closing_qty) FILTER (WHERE r.rn = 1),
		       MAX(r.entry_date)
		FROM ranked r
		LEFT JOIN items i ON i.id = r.item_id
		GROUP BY r.item_id, i.name, i.unit
		ORDER BY COALESCE(i.name, ''), r.item_id`, t.rankExpr, t.name)

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", stream, err)
	}
	defer rows.Close()

	list := make([]entity.ItemSummary, 0)
	for rows.Next() {
		var s entity.ItemSummary
		if err := rows.Scan(
			&s.ItemID, &s.ItemName, &s.ItemUnit, &s.EntryCount,
			&s.TotalInbound, &s.TotalOutgoing, &s.LastClosing, &s.LastDate,
		); err != nil {
			return nil, fmt.Errorf("scan %s summary: %w", stream, err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
