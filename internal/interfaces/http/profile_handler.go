package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CajaDiaria-api/internal/application/auth"
	"github.com/jhoicas/CajaDiaria-api/internal/application/dto"
	"github.com/jhoicas/CajaDiaria-api/internal/application/usecase"
)

// ProfileHandler alta y consulta de perfiles.
type ProfileHandler struct {
	uc     *usecase.ProfileUseCase
	authUC *auth.AuthUseCase
}

// NewProfileHandler construye el handler de perfiles.
func NewProfileHandler(uc *usecase.ProfileUseCase, authUC *auth.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc, authUC: authUC}
}

// Create godoc
// @Summary      Crear perfil propio
// @Description  El primer perfil del sistema queda como admin. Devuelve un token
// @Description  reemitido con el rol definitivo.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProfileRequest  true  "username"
// @Success      201   {object}  dto.CreateProfileResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/profile [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	callerID := GetUserID(c)
	profile, err := h.uc.Create(c.Context(), callerID, in)
	if err != nil {
		return respondError(c, err)
	}
	token, err := h.authUC.TokenFor(c.Context(), callerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProfileResponse{
		Profile: *profile,
		Token:   token,
	})
}

// Get godoc
// @Summary      Consultar perfil
// @Description  Sin user_id devuelve el propio; con user_id solo admin.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query  string  false  "perfil de otro usuario (admin)"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c), c.Query("user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
