package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CajaDiaria-api/internal/application/dto"
	"github.com/jhoicas/CajaDiaria-api/internal/application/usecase"
)

// AdminHandler rutas exclusivas del administrador.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers godoc
// @Summary      Listar usuarios con perfil
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.AdminUserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateUsername godoc
// @Summary      Renombrar a un usuario
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "user_id del objetivo"
// @Param        body  body  dto.UpdateUsernameRequest  true  "username nuevo"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/username [put]
func (h *AdminHandler) UpdateUsername(c *fiber.Ctx) error {
	var in dto.UpdateUsernameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateUsername(c.Context(), GetUserID(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateDeductions godoc
// @Summary      Fijar deducciones mensuales de un usuario
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "user_id del objetivo"
// @Param        body  body  dto.UpdateDeductionsRequest  true  "monto de deducciones"
// @Success      204  "sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/deductions [put]
func (h *AdminHandler) UpdateDeductions(c *fiber.Ctx) error {
	var in dto.UpdateDeductionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateDeductions(c.Context(), GetUserID(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteUser godoc
// @Summary      Eliminar la cuenta de un usuario no admin
// @Description  El perfil y todos los movimientos del usuario caen en cascada.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "user_id del objetivo"
// @Success      204  "sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Totales del mes por usuario
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        year   query  int  true   "año"
// @Param        month  query  int  false  "mes 1-12; 0 = año entero"
// @Success      200  {object}  dto.AdminSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/summary [get]
func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	out, err := h.uc.Summary(c.Context(), GetUserID(c), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ResetData godoc
// @Summary      Borrar todos los movimientos (irreversible)
// @Description  Conserva cuentas y perfiles. Requiere la frase de confirmación
// @Description  exacta; cualquier diferencia rechaza la operación sin borrar nada.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ResetRequest  true  "frase de confirmación"
// @Success      200  {object}  dto.ResetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/reset/data [post]
func (h *AdminHandler) ResetData(c *fiber.Ctx) error {
	var in dto.ResetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ResetDataOnly(c.Context(), GetUserID(c), in.Confirmation)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ResetComplete godoc
// @Summary      Reset completo del sistema (irreversible)
// @Description  Borra todos los movimientos y todas las cuentas salvo la del
// @Description  admin que ejecuta. Requiere la frase de confirmación exacta.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ResetRequest  true  "frase de confirmación"
// @Success      200  {object}  dto.ResetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/reset/complete [post]
func (h *AdminHandler) ResetComplete(c *fiber.Ctx) error {
	var in dto.ResetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ResetComplete(c.Context(), GetUserID(c), in.Confirmation)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
