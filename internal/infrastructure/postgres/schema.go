package postgres

import (
	"context"
	"fmt"
)

// schemaStatements DDL idempotente. item_id no lleva FK: borrar un ítem deja los
// asientos intactos y la vista de reporte los muestra con nombre vacío.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		unit TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS floor_entries (
		id            BIGSERIAL PRIMARY KEY,
		entry_date    DATE NOT NULL,
		shift         TEXT NOT NULL CHECK (shift IN ('Morning', 'Evening')),
		item_id       BIGINT NOT NULL,
		opening_qty   NUMERIC(14,3) NOT NULL,
		inbound_qty   NUMERIC(14,3) NOT NULL,
		outgoing_qty  NUMERIC(14,3) NOT NULL,
		closing_qty   NUMERIC(14,3) NOT NULL,
		operator_name TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_floor_entries_item_date ON floor_entries (item_id, entry_date)`,
	`CREATE TABLE IF NOT EXISTS warehouse_entries (
		id            BIGSERIAL PRIMARY KEY,
		entry_date    DATE NOT NULL,
		item_id       BIGINT NOT NULL,
		opening_qty   NUMERIC(14,3) NOT NULL,
		inbound_qty   NUMERIC(14,3) NOT NULL,
		outgoing_qty  NUMERIC(14,3) NOT NULL,
		closing_qty   NUMERIC(14,3) NOT NULL,
		operator_name TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_warehouse_entries_item_date ON warehouse_entries (item_id, entry_date)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL CHECK (role IN ('admin', 'petugas')),
		status        TEXT NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Bootstrap crea las tablas si no existen. Seguro de ejecutar en cada arranque.
func Bootstrap(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
