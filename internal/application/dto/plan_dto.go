package dto

import (
	"time"

	"github.com/jhoicas/Planfin-api/internal/domain/entity"
)

// SavePlanRequest entrada para guardar el plan del usuario. Los ítems de las
// colecciones pueden venir sin ID (nuevos): el use case les asigna uno estable.
type SavePlanRequest struct {
	Config entity.BusinessConfig `json:"config"`
}

// PlanResponse el documento de plan del usuario. UpdatedAt es nil cuando el
// usuario todavía no guardó nada y se devuelve la configuración semilla.
type PlanResponse struct {
	SchemaVersion string                `json:"schema_version"`
	Config        entity.BusinessConfig `json:"config"`
	UpdatedAt     *time.Time            `json:"updated_at,omitempty"`
}

// SavePlanResponse confirmación de guardado.
type SavePlanResponse struct {
	Status string       `json:"status"` // succeeded
	Plan   PlanResponse `json:"plan"`
}
