package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Planfin-api/internal/application/dto"
	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/domain/projection"
	"github.com/jhoicas/Planfin-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProjectionUseCase corre el motor sobre el plan del usuario y arma la
// respuesta de presentación: cifras redondeadas a 2 decimales y ratios
// operativos derivados del resumen (el motor entrega valores sin redondear).
type ProjectionUseCase struct {
	planRepo repository.PlanRepository
}

// NewProjectionUseCase construye el caso de uso.
func NewProjectionUseCase(planRepo repository.PlanRepository) *ProjectionUseCase {
	return &ProjectionUseCase{planRepo: planRepo}
}

// Get computa la proyección del plan del usuario. scenarioOverride fuerza un
// escenario sin tocar el documento guardado; vacío usa el del plan. Cada
// llamada recomputa el resumen completo desde la configuración completa.
func (uc *ProjectionUseCase) Get(ctx context.Context, userID, scenarioOverride string) (*dto.ProjectionResponse, error) {
	cfg, err := uc.loadConfig(ctx, userID)
	if err != nil {
		return nil, err
	}

	override := entity.Scenario(scenarioOverride)
	summary := projection.Compute(cfg, override)
	ratios := projection.ComputeRatios(summary, cfg.Loan)

	return toProjectionResponse(appliedScenario(cfg.Scenario, override), summary, ratios), nil
}

// Summary computa la proyección y devuelve el resultado crudo del motor,
// para consumidores internos (ej. reporte PDF) que formatean por su cuenta.
func (uc *ProjectionUseCase) Summary(ctx context.Context, userID, scenarioOverride string) (entity.BusinessConfig, *projection.Summary, projection.Ratios, error) {
	cfg, err := uc.loadConfig(ctx, userID)
	if err != nil {
		return entity.BusinessConfig{}, nil, projection.Ratios{}, err
	}
	summary := projection.Compute(cfg, entity.Scenario(scenarioOverride))
	ratios := projection.ComputeRatios(summary, cfg.Loan)
	return cfg, summary, ratios, nil
}

// appliedScenario resuelve el escenario efectivo para la respuesta: el
// override manda, y un selector no reconocido se reporta como base (igual que
// lo trata el motor).
func appliedScenario(configured, override entity.Scenario) entity.Scenario {
	s := configured
	if override != "" {
		s = override
	}
	switch s {
	case entity.ScenarioPessimistic, entity.ScenarioOptimistic:
		return s
	default:
		return entity.ScenarioBase
	}
}

func (uc *ProjectionUseCase) loadConfig(ctx context.Context, userID string) (entity.BusinessConfig, error) {
	doc, err := uc.planRepo.Load(ctx, userID)
	if err != nil {
		return entity.BusinessConfig{}, fmt.Errorf("cargar plan: %w", err)
	}
	if doc == nil {
		return DefaultBusinessConfig(), nil
	}
	return doc.Config, nil
}

func toProjectionResponse(scenario entity.Scenario, s *projection.Summary, r projection.Ratios) *dto.ProjectionResponse {
	months := make([]dto.MonthlyProjectionDTO, 0, len(s.Months))
	for _, m := range s.Months {
		months = append(months, dto.MonthlyProjectionDTO{
			Period:             m.Period,
			UnitsSold:          round2(m.UnitsSold),
			Revenue:            round2(m.Revenue),
			EBITDA:             round2(m.EBITDA),
			NetIncome:          round2(m.NetIncome),
			InterestExpense:    round2(m.InterestExpense),
			PrincipalRepayment: round2(m.PrincipalRepayment),
			CashFlow:           round2(m.CashFlow),
			CumulativeCash:     round2(m.CumulativeCash),
			LoanBalance:        round2(m.LoanBalance),
			Equity:             round2(m.Equity),
			InventoryValue:     round2(m.InventoryValue),
			NetFixedAssetValue: round2(m.NetFixedAssetValue),
		})
	}

	var payback *int
	if s.PaybackPeriod > 0 {
		p := s.PaybackPeriod
		payback = &p
	}

	ratios := dto.ProjectionRatiosDTO{
		UnitMargin:       round2(r.UnitMargin),
		DailyGoalUnits:   round2(r.DailyGoalUnits),
		DailyGoalRevenue: round2(r.DailyGoalRevenue),
		DSCR:             round2(r.DSCR),
	}
	if r.BreakEvenDefined {
		be := round2(r.BreakEvenUnits)
		ratios.BreakEvenUnits = &be
	}

	return &dto.ProjectionResponse{
		Scenario:             string(scenario),
		Months:               months,
		TotalRevenue:         round2(s.TotalRevenue),
		TotalEBITDA:          round2(s.TotalEBITDA),
		AverageUnitPrice:     round2(s.AverageUnitPrice),
		AverageUnitCost:      round2(s.AverageUnitCost),
		MonthlyFixedCostBase: round2(s.MonthlyFixedCostBase),
		TerminalValue:        round2(s.TerminalValue),
		NetPresentValue:      round2(s.NetPresentValue),
		SimpleReturnPercent:  round2(s.SimpleReturnPercent),
		PaybackPeriod:        payback,
		Ratios:               ratios,
	}
}

// round2 redondeo de presentación; el motor nunca redondea internamente.
func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
