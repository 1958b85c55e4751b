package http_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/sobrickz-opname/internal/application/dto"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// addItem crea un ítem como admin y devuelve su ID.
func (s *testServer) addItem(t *testing.T, name, unit string) int64 {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/items", s.admin, dto.CreateItemRequest{Name: name, Unit: unit})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ItemResponse](t, resp).ID
}

func (s *testServer) record(t *testing.T, stream string, in dto.RecordEntryRequest) dto.EntryResponse {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/ledger/"+stream+"/entries", s.staff, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.EntryResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y apertura
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_CalculaSalidaYFirmaConOperador(t *testing.T) {
	s := newTestServer(t)
	gula := s.addItem(t, "Gula", "Kg")

	out := s.record(t, "floor", dto.RecordEntryRequest{
		Date: "2024-01-01", Shift: "Morning", ItemID: gula,
		Opening: dec("10"), Inbound: dec("5"), Closing: dec("12"),
	})
	assert.Positive(t, out.ID)
	assert.True(t, dec("3").Equal(out.Outgoing), "out = (10 + 5) - 12")
	assert.Equal(t, "Sari", out.OperatorName, "sin operator_name se usa el del token")
	assert.Equal(t, "floor", out.Stream)

	named := s.record(t, "floor", dto.RecordEntryRequest{
		Date: "2024-01-01", Shift: "Evening", ItemID: gula,
		Opening: dec("12"), Inbound: dec("0"), Closing: dec("9"), OperatorName: "Budi",
	})
	assert.Equal(t, "Budi", named.OperatorName)
}

func TestRecordEntry_Rechazos(t *testing.T) {
	s := newTestServer(t)
	gula := s.addItem(t, "Gula", "Kg")

	cases := []struct {
		name   string
		stream string
		in     dto.RecordEntryRequest
		code   string
	}{
		{"stream desconocido", "kitchen", dto.RecordEntryRequest{Date: "2024-01-01", ItemID: gula}, "INVALID_STREAM"},
		{"piso sin turno", "floor", dto.RecordEntryRequest{Date: "2024-01-01", ItemID: gula}, "VALIDATION"},
		{"turno inválido", "floor", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Night", ItemID: gula}, "VALIDATION"},
		{"bodega con turno", "warehouse", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Morning", ItemID: gula}, "VALIDATION"},
		{"fecha inválida", "warehouse", dto.RecordEntryRequest{Date: "01/02/2024", ItemID: gula}, "VALIDATION"},
		{"sin ítem", "warehouse", dto.RecordEntryRequest{Date: "2024-01-01"}, "VALIDATION"},
		{"cierre negativo", "warehouse", dto.RecordEntryRequest{Date: "2024-01-01", ItemID: gula, Closing: dec("-1")}, "VALIDATION"},
		{"más de 3 decimales", "warehouse", dto.RecordEntryRequest{Date: "2024-01-01", ItemID: gula, Opening: dec("0.0005"), Inbound: dec("0.0005")}, "VALIDATION"},
		{"apertura desborda", "warehouse", dto.RecordEntryRequest{Date: "2024-01-01", ItemID: gula, Opening: dec("100000000000")}, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := s.do(t, http.MethodPost, "/api/ledger/"+tc.stream+"/entries", s.staff, tc.in)
			body := decode[dto.ErrorResponse](t, resp)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestOpeningDefault_ArrastraCierreAnterior(t *testing.T) {
	s := newTestServer(t)
	gula := s.addItem(t, "Gula", "Kg")
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Morning", ItemID: gula, Opening: dec("10"), Inbound: dec("5"), Closing: dec("12")})
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Evening", ItemID: gula, Opening: dec("12"), Closing: dec("9")})

	path := fmt.Sprintf("/api/ledger/floor/opening-default?item_id=%d&date=2024-01-02", gula)
	resp := s.do(t, http.MethodGet, path, s.staff, nil)
	out := decode[dto.OpeningDefaultResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, dec("9").Equal(out.Opening), "gana el cierre del turno Evening")
	assert.Equal(t, "2024-01-02", out.Date)

	// mismo día: solo cuentan fechas estrictamente anteriores
	path = fmt.Sprintf("/api/ledger/floor/opening-default?item_id=%d&date=2024-01-01", gula)
	resp = s.do(t, http.MethodGet, path, s.staff, nil)
	assert.True(t, decimal.Zero.Equal(decode[dto.OpeningDefaultResponse](t, resp).Opening))

	// el flujo de bodega es independiente
	path = fmt.Sprintf("/api/ledger/warehouse/opening-default?item_id=%d&date=2024-01-02", gula)
	resp = s.do(t, http.MethodGet, path, s.staff, nil)
	assert.True(t, decimal.Zero.Equal(decode[dto.OpeningDefaultResponse](t, resp).Opening))
}

func TestOpeningDefault_ParametrosInvalidos(t *testing.T) {
	s := newTestServer(t)
	for _, q := range []string{"", "?item_id=abc", "?item_id=0", "?item_id=1&date=ayer"} {
		resp := s.do(t, http.MethodGet, "/api/ledger/floor/opening-default"+q, s.staff, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestPreview(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/ledger/warehouse/preview", s.staff, dto.PreviewRequest{
		Opening: dec("10"), Inbound: dec("5"), Closing: dec("12"),
	})
	out := decode[dto.PreviewResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, dec("3").Equal(out.Outgoing))
	assert.Equal(t, "Out = (10 + 5) - 12 = 3", out.Formula)

	resp = s.do(t, http.MethodPost, "/api/ledger/warehouse/preview", s.staff, dto.PreviewRequest{Opening: dec("-1")})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte, borrado y exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestListEntries_OrdenYItemBorrado(t *testing.T) {
	s := newTestServer(t)
	gula := s.addItem(t, "Gula", "Kg")
	kopi := s.addItem(t, "Kopi", "Pcs")
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Evening", ItemID: gula, Opening: dec("12"), Closing: dec("9")})
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Morning", ItemID: gula, Opening: dec("10"), Inbound: dec("5"), Closing: dec("12")})
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-02", Shift: "Morning", ItemID: kopi, Opening: dec("40"), Closing: dec("10")})

	resp := s.do(t, http.MethodDelete, "/api/items/Kopi", s.admin, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/ledger/floor/entries", s.staff, nil)
	list := decode[dto.ReportListResponse](t, resp)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "2024-01-02", list.Rows[0].Date)
	assert.Equal(t, "", list.Rows[0].ItemName, "el asiento sobrevive al ítem borrado")
	assert.Equal(t, "Morning", list.Rows[1].Shift)
	assert.Equal(t, "Evening", list.Rows[2].Shift)

	resp = s.do(t, http.MethodGet, "/api/ledger/warehouse/entries", s.staff, nil)
	assert.Equal(t, 0, decode[dto.ReportListResponse](t, resp).Total)
}

func TestDeleteEntry(t *testing.T) {
	s := newTestServer(t)
	gula := s.addItem(t, "Gula", "Kg")
	e := s.record(t, "warehouse", dto.RecordEntryRequest{Date: "2024-01-01", ItemID: gula, Opening: dec("50"), Closing: dec("40")})
	path := fmt.Sprintf("/api/ledger/warehouse/entries/%d", e.ID)

	resp := s.do(t, http.MethodDelete, path, s.staff, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, path, s.admin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// repetir es un no-op
	resp = s.do(t, http.MethodDelete, path, s.admin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/api/ledger/warehouse/entries/abc", s.admin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/ledger/warehouse/entries", s.staff, nil)
	assert.Equal(t, 0, decode[dto.ReportListResponse](t, resp).Total)
}

func TestExport_XLSX(t *testing.T) {
	s := newTestServer(t)
	gula := s.addItem(t, "Gula", "Kg")
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Morning", ItemID: gula, Opening: dec("10"), Inbound: dec("5"), Closing: dec("12")})
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Evening", ItemID: gula, Opening: dec("12"), Closing: dec("9")})

	resp := s.do(t, http.MethodGet, "/api/ledger/floor/export?format=xlsx", s.staff, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "rekap_harian.xlsx")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows("Rekap")
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera más dos asientos")
	assert.Equal(t, []string{"Tanggal", "Shift", "Barang", "Awal", "In", "Out", "Akhir", "Petugas"}, rows[0])
}

func TestExport_PDFGudang(t *testing.T) {
	s := newTestServer(t)
	gula := s.addItem(t, "Gula", "Kg")
	s.record(t, "warehouse", dto.RecordEntryRequest{Date: "2024-01-01", ItemID: gula, Opening: dec("50"), Closing: dec("40")})

	resp := s.do(t, http.MethodGet, "/api/ledger/warehouse/export?format=pdf", s.staff, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "rekap_gudang.pdf")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestExport_FormatoDesconocido(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/ledger/floor/export?format=csv", s.staff, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSummary(t *testing.T) {
	s := newTestServer(t)
	gula := s.addItem(t, "Gula", "Kg")
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Morning", ItemID: gula, Opening: dec("10"), Inbound: dec("5"), Closing: dec("12")})
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-01", Shift: "Evening", ItemID: gula, Opening: dec("12"), Closing: dec("9")})
	s.record(t, "floor", dto.RecordEntryRequest{Date: "2024-01-02", Shift: "Morning", ItemID: gula, Opening: dec("9"), Inbound: dec("2"), Closing: dec("8")})

	resp := s.do(t, http.MethodGet, "/api/ledger/floor/summary?start_date=2024-01-01&end_date=2024-01-31", s.staff, nil)
	out := decode[dto.SummaryResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2024-01-01", out.Period.StartDate)
	require.Len(t, out.Items, 1)
	g := out.Items[0]
	assert.Equal(t, "Gula", g.ItemName)
	assert.Equal(t, 3, g.EntryCount)
	assert.True(t, dec("7").Equal(g.TotalInbound))
	assert.True(t, dec("9").Equal(g.TotalOutgoing))
	assert.True(t, dec("8").Equal(g.LastClosing))

	resp = s.do(t, http.MethodGet, "/api/ledger/floor/summary?start_date=2024-02-01&end_date=2024-01-01", s.staff, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
