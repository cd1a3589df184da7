package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planfin-api/internal/application/dto"
	"github.com/jhoicas/Planfin-api/internal/application/usecase"
	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/infrastructure/memory"
)

// Sin plan guardado la proyección corre sobre la configuración semilla:
// útil para que un usuario nuevo vea números apenas entra.
func TestProjectionGet_SinPlanUsaSemilla(t *testing.T) {
	uc := usecase.NewProjectionUseCase(memory.NewPlanRepository())

	out, err := uc.Get(context.Background(), testUserID, "")
	require.NoError(t, err)

	assert.Equal(t, "base", out.Scenario)
	require.Len(t, out.Months, 12)
	assert.True(t, out.TotalRevenue.IsPositive(), "la semilla es un negocio con ventas")
}

// El override de escenario se aplica sin tocar el documento guardado.
func TestProjectionGet_OverrideNoPersiste(t *testing.T) {
	planRepo := memory.NewPlanRepository()
	planUC := usecase.NewPlanUseCase(planRepo)
	projectionUC := usecase.NewProjectionUseCase(planRepo)
	ctx := context.Background()

	cfg := usecase.DefaultBusinessConfig()
	cfg.Scenario = entity.ScenarioBase
	_, err := planUC.Save(ctx, testUserID, dto.SavePlanRequest{Config: cfg})
	require.NoError(t, err)

	base, err := projectionUC.Get(ctx, testUserID, "")
	require.NoError(t, err)
	opt, err := projectionUC.Get(ctx, testUserID, "optimistic")
	require.NoError(t, err)

	assert.Equal(t, "optimistic", opt.Scenario)
	assert.True(t, opt.TotalRevenue.GreaterThan(base.TotalRevenue),
		"el escenario optimista vende más que el base")

	saved, err := planUC.Get(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, entity.ScenarioBase, saved.Config.Scenario,
		"el override no modifica el escenario guardado")
}

// Un selector no reconocido se reporta y proyecta como base.
func TestProjectionGet_EscenarioDesconocidoEsBase(t *testing.T) {
	uc := usecase.NewProjectionUseCase(memory.NewPlanRepository())
	ctx := context.Background()

	base, err := uc.Get(ctx, testUserID, "")
	require.NoError(t, err)
	raro, err := uc.Get(ctx, testUserID, "agresivo")
	require.NoError(t, err)

	assert.Equal(t, "base", raro.Scenario)
	assert.True(t, base.TotalRevenue.Equal(raro.TotalRevenue))
}

// La semilla arma un negocio rentable con punto de equilibrio definido.
func TestProjectionGet_RatiosDeLaSemilla(t *testing.T) {
	uc := usecase.NewProjectionUseCase(memory.NewPlanRepository())

	out, err := uc.Get(context.Background(), testUserID, "")
	require.NoError(t, err)

	require.NotNil(t, out.Ratios.BreakEvenUnits, "la semilla tiene margen unitario positivo")
	assert.True(t, out.Ratios.BreakEvenUnits.IsPositive())
	assert.True(t, out.Ratios.DailyGoalRevenue.IsPositive())
}
