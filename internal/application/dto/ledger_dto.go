package dto

import "github.com/shopspring/decimal"

// RecordEntryRequest body para POST /api/ledger/:stream/entries.
// Shift es obligatorio en piso y debe omitirse en bodega.
// OperatorName vacío => se usa el nombre del operador autenticado.
type RecordEntryRequest struct {
	Date         string          `json:"date" validate:"required,datetime=2006-01-02"`
	Shift        string          `json:"shift,omitempty" validate:"omitempty,oneof=Morning Evening"`
	ItemID       int64           `json:"item_id" validate:"required,gt=0"`
	Opening      decimal.Decimal `json:"opening_qty"`
	Inbound      decimal.Decimal `json:"inbound_qty"`
	Closing      decimal.Decimal `json:"closing_qty"`
	OperatorName string          `json:"operator_name,omitempty" validate:"omitempty,max=120"`
}

// EntryResponse asiento registrado.
type EntryResponse struct {
	ID           int64           `json:"id"`
	Stream       string          `json:"stream"`
	Date         string          `json:"date"`
	Shift        string          `json:"shift,omitempty"`
	ItemID       int64           `json:"item_id"`
	Opening      decimal.Decimal `json:"opening_qty"`
	Inbound      decimal.Decimal `json:"inbound_qty"`
	Outgoing     decimal.Decimal `json:"outgoing_qty"`
	Closing      decimal.Decimal `json:"closing_qty"`
	OperatorName string          `json:"operator_name"`
}

// PreviewRequest body para POST /api/ledger/:stream/preview.
type PreviewRequest struct {
	Opening decimal.Decimal `json:"opening_qty"`
	Inbound decimal.Decimal `json:"inbound_qty"`
	Closing decimal.Decimal `json:"closing_qty"`
}

// PreviewResponse salida calculada sin persistir.
type PreviewResponse struct {
	Opening  decimal.Decimal `json:"opening_qty"`
	Inbound  decimal.Decimal `json:"inbound_qty"`
	Closing  decimal.Decimal `json:"closing_qty"`
	Outgoing decimal.Decimal `json:"outgoing_qty"`
	Formula  string          `json:"formula"` // "Out = (10 + 5) - 12 = 3"
}

// OpeningDefaultResponse apertura sugerida (cierre del conteo anterior).
type OpeningDefaultResponse struct {
	Stream  string          `json:"stream"`
	ItemID  int64           `json:"item_id"`
	Date    string          `json:"date"`
	Opening decimal.Decimal `json:"opening_qty"`
}

// ReportRowDTO fila de la vista de reporte.
type ReportRowDTO struct {
	EntryID      int64           `json:"entry_id"`
	Date         string          `json:"date"`
	Shift        string          `json:"shift,omitempty"`
	ItemName     string          `json:"item_name"`
	Opening      decimal.Decimal `json:"opening_qty"`
	Inbound      decimal.Decimal `json:"inbound_qty"`
	Outgoing     decimal.Decimal `json:"outgoing_qty"`
	Closing      decimal.Decimal `json:"closing_qty"`
	OperatorName string          `json:"operator_name"`
}

// ReportListResponse listado completo de un flujo.
type ReportListResponse struct {
	Stream string         `json:"stream"`
	Total  int            `json:"total"`
	Rows   []ReportRowDTO `json:"rows"`
}

// SummaryRequest query params de GET /api/ledger/:stream/summary.
type SummaryRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; default primer día del mes
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; default hoy
}

// ItemSummaryDTO totales por ítem en el período.
type ItemSummaryDTO struct {
	ItemID        int64           `json:"item_id"`
	ItemName      string          `json:"item_name"`
	ItemUnit      string          `json:"item_unit"`
	EntryCount    int             `json:"entry_count"`
	TotalInbound  decimal.Decimal `json:"total_inbound"`
	TotalOutgoing decimal.Decimal `json:"total_outgoing"`
	LastClosing   decimal.Decimal `json:"last_closing"`
	LastDate      string          `json:"last_date"`
}

// SummaryResponse reporte de consumo por ítem.
type SummaryResponse struct {
	Stream string           `json:"stream"`
	Period PeriodDTO        `json:"period"`
	Items  []ItemSummaryDTO `json:"items"`
}
