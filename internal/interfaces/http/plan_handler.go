package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planfin-api/internal/application/dto"
	"github.com/jhoicas/Planfin-api/internal/application/usecase"
	"github.com/jhoicas/Planfin-api/internal/domain"
)

// PlanHandler maneja lectura y guardado del plan de negocio del usuario.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler de plan.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el plan del usuario
// @Description  Si el usuario nunca guardó, devuelve la configuración semilla (updated_at null).
// @Tags         plan
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PlanResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/plan [get]
func (h *PlanHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar el plan completo
// @Description  Reemplaza el documento entero (last-write-wins). Asigna IDs a los ítems nuevos.
// @Tags         plan
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SavePlanRequest  true  "configuración completa del negocio"
// @Success      200   {object}  dto.SavePlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/plan [put]
func (h *PlanHandler) Save(c *fiber.Ctx) error {
	var in dto.SavePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
