package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/sobrickz-opname/internal/application/catalog"
	"github.com/jhoicas/sobrickz-opname/internal/application/dto"
)

// ItemHandler catálogo de ítems.
type ItemHandler struct {
	uc  *catalog.CatalogUseCase
	log zerolog.Logger
}

func NewItemHandler(uc *catalog.CatalogUseCase, log zerolog.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar catálogo
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.UserContext())
	if err != nil {
		return writeError(c, h.log, "listar ítems", err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar ítem (solo admin)
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateItemRequest  true  "name, unit"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddItem(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, "agregar ítem", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Quitar ítem por nombre (solo admin)
// @Description  Los asientos que lo referencian quedan con nombre vacío en los reportes.
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        name  path  string  true  "nombre exacto"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{name} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre inválido"})
	}
	if err := h.uc.RemoveItem(c.UserContext(), name); err != nil {
		return writeError(c, h.log, "quitar ítem", err)
	}
	return c.JSON(dto.MessageResponse{Message: "ítem eliminado"})
}
