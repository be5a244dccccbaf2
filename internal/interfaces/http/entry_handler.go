package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CajaDiaria-api/internal/application/dto"
	"github.com/jhoicas/CajaDiaria-api/internal/application/usecase"
)

// EntryHandler movimientos diarios de caja.
type EntryHandler struct {
	uc *usecase.EntryUseCase
}

// NewEntryHandler construye el handler de movimientos.
func NewEntryHandler(uc *usecase.EntryUseCase) *EntryHandler {
	return &EntryHandler{uc: uc}
}

// Upsert godoc
// @Summary      Registrar o actualizar el movimiento de un día
// @Description  Idempotente por (usuario, fecha): repetir la llamada sobreescribe
// @Description  los montos del día. Con target_user_id un admin edita a otros.
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpsertEntryRequest  true  "movimiento del día"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/entries [put]
func (h *EntryHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Upsert(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos por mes o año
// @Description  month=0 u omitido devuelve el año completo.
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        year     query  int     true   "año"
// @Param        month    query  int     false  "mes 1-12; 0 = año entero"
// @Param        user_id  query  string  false  "movimientos de otro usuario (admin)"
// @Success      200  {array}   dto.EntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	out, err := h.uc.List(c.Context(), GetUserID(c), c.Query("user_id"), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Advances godoc
// @Summary      Anticipos acumulados del mes
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        year_month  query  string  true   "AAAA-MM"
// @Param        user_id     query  string  false  "anticipos de otro usuario (admin)"
// @Success      200  {object}  dto.MonthlyAdvancesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/entries/advances [get]
func (h *EntryHandler) Advances(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyAdvances(c.Context(), GetUserID(c), c.Query("user_id"), c.Query("year_month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen mensual de un usuario
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        year     query  int     true   "año"
// @Param        month    query  int     true   "mes 1-12"
// @Param        user_id  query  string  false  "resumen de otro usuario (admin)"
// @Success      200  {object}  dto.MonthSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/entries/summary [get]
func (h *EntryHandler) Summary(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	out, err := h.uc.MonthSummary(c.Context(), GetUserID(c), c.Query("user_id"), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un movimiento (solo admin)
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [delete]
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
