package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planfin-api/internal/application/dto"
	"github.com/jhoicas/Planfin-api/internal/application/report"
	"github.com/jhoicas/Planfin-api/internal/application/usecase"
	"github.com/jhoicas/Planfin-api/internal/domain"
)

// ProjectionHandler expone la proyección a 12 meses y su reporte PDF.
type ProjectionHandler struct {
	projectionUC *usecase.ProjectionUseCase
	reportUC     *report.ReportUseCase
}

// NewProjectionHandler construye el handler de proyección.
func NewProjectionHandler(projectionUC *usecase.ProjectionUseCase, reportUC *report.ReportUseCase) *ProjectionHandler {
	return &ProjectionHandler{projectionUC: projectionUC, reportUC: reportUC}
}

// Get godoc
// @Summary      Proyección financiera a 12 meses
// @Description  Recomputa la proyección completa desde el plan guardado. ?scenario= fuerza un escenario sin persistirlo.
// @Tags         projection
// @Produce      json
// @Security     BearerAuth
// @Param        scenario  query  string  false  "pessimistic | base | optimistic"
// @Success      200  {object}  dto.ProjectionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/plan/projection [get]
func (h *ProjectionHandler) Get(c *fiber.Ctx) error {
	out, err := h.projectionUC.Get(c.Context(), GetUserID(c), c.Query("scenario"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de la proyección
// @Description  Genera el reporte imprimible. Requiere un plan guardado.
// @Tags         projection
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        scenario  query  string  false  "pessimistic | base | optimistic"
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plan/projection/report [get]
func (h *ProjectionHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.reportUC.GenerateProjectionReport(c.Context(), GetUserID(c), c.Query("scenario"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay plan guardado para generar el reporte"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="proyeccion.pdf"`)
	return c.Send(pdf)
}
