package repository

import (
	"context"

	"github.com/jhoicas/Planfin-api/internal/domain/entity"
)

// PlanRepository define el puerto de persistencia del documento de plan.
// Semántica de store de documentos: un documento por usuario, last-write-wins.
// Load devuelve (nil, nil) si el usuario aún no guardó nada. El motor de
// proyección nunca llama a este puerto; solo la capa de aplicación.
type PlanRepository interface {
	Load(ctx context.Context, userID string) (*entity.PlanDocument, error)
	Save(ctx context.Context, doc *entity.PlanDocument) error
}
