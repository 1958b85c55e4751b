package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/sobrickz-opname/internal/application/dto"
	appledger "github.com/jhoicas/sobrickz-opname/internal/application/ledger"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/ledger"
)

// LedgerHandler conteos de piso y bodega bajo /api/ledger/:stream.
type LedgerHandler struct {
	engine *appledger.EngineUseCase
	report *appledger.ReportUseCase
	export *appledger.ExportUseCase
	log    zerolog.Logger
}

// NewLedgerHandler construye el handler del libro.
func NewLedgerHandler(engine *appledger.EngineUseCase, report *appledger.ReportUseCase, export *appledger.ExportUseCase, log zerolog.Logger) *LedgerHandler {
	return &LedgerHandler{engine: engine, report: report, export: export, log: log}
}

// streamParam lee :stream; responde 400 si no es floor ni warehouse.
func streamParam(c *fiber.Ctx) (entity.Stream, bool, error) {
	s := entity.Stream(c.Params("stream"))
	if !s.Valid() {
		return "", false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STREAM", Message: "stream debe ser floor o warehouse"})
	}
	return s, true, nil
}

// OpeningDefault godoc
// @Summary      Apertura sugerida
// @Description  Cierre del conteo más reciente del ítem con fecha anterior a date; 0 si no hay.
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        stream   path   string  true   "floor | warehouse"
// @Param        item_id  query  int     true   "ID del ítem"
// @Param        date     query  string  false  "YYYY-MM-DD (default hoy)"
// @Success      200  {object}  dto.OpeningDefaultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/{stream}/opening-default [get]
func (h *LedgerHandler) OpeningDefault(c *fiber.Ctx) error {
	stream, ok, err := streamParam(c)
	if !ok {
		return err
	}
	itemID, err := strconv.ParseInt(c.Query("item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id inválido"})
	}
	date := ledger.Day(time.Now())
	if q := c.Query("date"); q != "" {
		if date, err = ledger.ParseDate(q); err != nil {
			return writeError(c, h.log, "apertura por defecto", err)
		}
	}
	opening, err := h.engine.GetOpeningDefault(c.UserContext(), stream, itemID, date)
	if err != nil {
		return writeError(c, h.log, "apertura por defecto", err)
	}
	return c.JSON(dto.OpeningDefaultResponse{
		Stream:  string(stream),
		ItemID:  itemID,
		Date:    date.Format(ledger.DateLayout),
		Opening: opening,
	})
}

// Preview godoc
// @Summary      Calcular salida sin guardar
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        stream  path  string              true  "floor | warehouse"
// @Param        body    body  dto.PreviewRequest  true  "opening_qty, inbound_qty, closing_qty"
// @Success      200  {object}  dto.PreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/{stream}/preview [post]
func (h *LedgerHandler) Preview(c *fiber.Ctx) error {
	if _, ok, err := streamParam(c); !ok {
		return err
	}
	var in dto.PreviewRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.engine.Preview(in)
	if err != nil {
		return writeError(c, h.log, "vista previa", err)
	}
	return c.JSON(out)
}

// RecordEntry godoc
// @Summary      Registrar conteo
// @Description  operator_name vacío toma el nombre del operador autenticado. shift obligatorio en floor.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        stream  path  string                  true  "floor | warehouse"
// @Param        body    body  dto.RecordEntryRequest  true  "conteo"
// @Success      201  {object}  dto.EntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ledger/{stream}/entries [post]
func (h *LedgerHandler) RecordEntry(c *fiber.Ctx) error {
	stream, ok, err := streamParam(c)
	if !ok {
		return err
	}
	var in dto.RecordEntryRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.engine.RecordEntryFromRequest(c.UserContext(), stream, GetUserName(c), in)
	if err != nil {
		return writeError(c, h.log, "registrar conteo", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEntries godoc
// @Summary      Listar conteos del flujo
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        stream  path  string  true  "floor | warehouse"
// @Success      200  {object}  dto.ReportListResponse
// @Router       /api/ledger/{stream}/entries [get]
func (h *LedgerHandler) ListEntries(c *fiber.Ctx) error {
	stream, ok, err := streamParam(c)
	if !ok {
		return err
	}
	out, err := h.report.List(c.UserContext(), stream)
	if err != nil {
		return writeError(c, h.log, "listar conteos", err)
	}
	return c.JSON(out)
}

// DeleteEntry godoc
// @Summary      Borrar conteo (solo admin)
// @Description  Borrar un ID inexistente no es error.
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        stream  path  string  true  "floor | warehouse"
// @Param        id      path  int     true  "ID del asiento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/{stream}/entries/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c *fiber.Ctx) error {
	stream, ok, err := streamParam(c)
	if !ok {
		return err
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.report.DeleteEntry(c.UserContext(), stream, id); err != nil {
		return writeError(c, h.log, "borrar conteo", err)
	}
	return c.JSON(dto.MessageResponse{Message: "conteo eliminado"})
}

// Export godoc
// @Summary      Exportar rekap
// @Tags         ledger
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        stream  path   string  true   "floor | warehouse"
// @Param        format  query  string  false  "xlsx | pdf (default xlsx)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/{stream}/export [get]
func (h *LedgerHandler) Export(c *fiber.Ctx) error {
	stream, ok, err := streamParam(c)
	if !ok {
		return err
	}
	file, err := h.export.Export(c.UserContext(), stream, c.Query("format", appledger.FormatXLSX))
	if err != nil {
		return writeError(c, h.log, "exportar", err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Bytes)
}

// Summary godoc
// @Summary      Consumo por ítem en un período
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        stream      path   string  true   "floor | warehouse"
// @Param        start_date  query  string  false  "YYYY-MM-DD (default primer día del mes)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (default hoy)"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/{stream}/summary [get]
func (h *LedgerHandler) Summary(c *fiber.Ctx) error {
	stream, ok, err := streamParam(c)
	if !ok {
		return err
	}
	var q dto.SummaryRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.report.Summary(c.UserContext(), stream, q)
	if err != nil {
		return writeError(c, h.log, "resumen", err)
	}
	return c.JSON(out)
}
