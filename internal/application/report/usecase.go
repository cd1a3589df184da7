// Package report arma el reporte PDF de la proyección: el equivalente
// estático de los paneles de Cash Flow y Rentabilidad de la aplicación.
package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planfin-api/internal/domain"
	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/domain/projection"
	"github.com/jhoicas/Planfin-api/internal/domain/repository"
)

// ReportUseCase orquesta plan + motor + generador PDF.
type ReportUseCase struct {
	planRepo repository.PlanRepository
	userRepo repository.UserRepository
	pdfGen   ProjectionPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	planRepo repository.PlanRepository,
	userRepo repository.UserRepository,
	pdfGen ProjectionPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{planRepo: planRepo, userRepo: userRepo, pdfGen: pdfGen}
}

// GenerateProjectionReport corre la proyección del usuario y la vuelca a PDF.
// Requiere un plan guardado: sin documento no hay reporte (ErrNotFound lo
// traduce el handler a 404).
func (uc *ReportUseCase) GenerateProjectionReport(ctx context.Context, userID, scenarioOverride string) ([]byte, error) {
	doc, err := uc.planRepo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cargar plan: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("reporte sin plan guardado: %w", domain.ErrNotFound)
	}

	owner, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("cargar usuario: %w", err)
	}

	summary := projection.Compute(doc.Config, entity.Scenario(scenarioOverride))
	ratios := projection.ComputeRatios(summary, doc.Config.Loan)

	pdf, err := uc.pdfGen.GenerateProjectionPDF(ctx, owner, doc.Config, summary, ratios)
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return pdf, nil
}
