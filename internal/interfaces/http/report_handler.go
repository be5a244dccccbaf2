package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CajaDiaria-api/internal/application/report"
)

// ReportHandler descarga de reportes PDF.
type ReportHandler struct {
	uc *report.StatementUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.StatementUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Estado mensual de caja en PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        year     query  int     true   "año"
// @Param        month    query  int     true   "mes 1-12"
// @Param        user_id  query  string  false  "reporte de otro usuario (admin)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	doc, filename, err := h.uc.Monthly(c.Context(), GetUserID(c), c.Query("user_id"), year, month)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(doc)
}
