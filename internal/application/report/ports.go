package report

import (
	"context"

	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/domain/projection"
)

// ProjectionPDFGenerator puerto de generación del reporte PDF de la
// proyección. La implementación (Maroto) vive en infrastructure.
type ProjectionPDFGenerator interface {
	GenerateProjectionPDF(
		ctx context.Context,
		owner *entity.User,
		cfg entity.BusinessConfig,
		summary *projection.Summary,
		ratios projection.Ratios,
	) ([]byte, error)
}
