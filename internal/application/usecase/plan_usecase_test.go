package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planfin-api/internal/application/dto"
	"github.com/jhoicas/Planfin-api/internal/application/usecase"
	"github.com/jhoicas/Planfin-api/internal/domain"
	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/infrastructure/memory"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// Un usuario que nunca guardó recibe la configuración semilla sin persistir:
// UpdatedAt en nil distingue "semilla" de "documento guardado".
func TestPlanGet_SinDocumentoDevuelveSemilla(t *testing.T) {
	uc := usecase.NewPlanUseCase(memory.NewPlanRepository())

	out, err := uc.Get(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, entity.PlanSchemaVersion, out.SchemaVersion)
	assert.Nil(t, out.UpdatedAt, "la semilla no tiene fecha de guardado")
	assert.Equal(t, 50000.0, out.Config.Investment)
	assert.Len(t, out.Config.Catalog, 2)
	assert.Len(t, out.Config.SeasonalityFactors, entity.SeasonalityPeriods)
}

// Guardar y releer: el documento vuelve completo, con versión de esquema y
// fecha de guardado estampadas por el use case.
func TestPlanSave_Roundtrip(t *testing.T) {
	uc := usecase.NewPlanUseCase(memory.NewPlanRepository())
	cfg := usecase.DefaultBusinessConfig()
	cfg.Investment = 99999

	saved, err := uc.Save(context.Background(), testUserID, dto.SavePlanRequest{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, "succeeded", saved.Status)
	require.NotNil(t, saved.Plan.UpdatedAt)

	out, err := uc.Get(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 99999.0, out.Config.Investment)
	assert.Equal(t, entity.PlanSchemaVersion, out.SchemaVersion)
	require.NotNil(t, out.UpdatedAt)
}

// Los ítems nuevos (sin ID) reciben un ID estable al guardar.
func TestPlanSave_AsignaIDsAItemsNuevos(t *testing.T) {
	uc := usecase.NewPlanUseCase(memory.NewPlanRepository())
	cfg := entity.BusinessConfig{
		Catalog:    []entity.CatalogItem{{Name: "Nuevo", UnitCost: 10, MarginPercent: 50}},
		FixedCosts: []entity.FixedCostLine{{Label: "Hosting", MonthlyAmount: 20}},
	}

	saved, err := uc.Save(context.Background(), testUserID, dto.SavePlanRequest{Config: cfg})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.Plan.Config.Catalog[0].ID)
	assert.NotEmpty(t, saved.Plan.Config.FixedCosts[0].ID)
}

// Un ID repetido dentro de su colección rechaza el guardado completo.
func TestPlanSave_IDRepetidoEsDuplicate(t *testing.T) {
	uc := usecase.NewPlanUseCase(memory.NewPlanRepository())
	cfg := entity.BusinessConfig{
		Catalog: []entity.CatalogItem{
			{ID: "dup", Name: "A", UnitCost: 10},
			{ID: "dup", Name: "B", UnitCost: 20},
		},
	}

	_, err := uc.Save(context.Background(), testUserID, dto.SavePlanRequest{Config: cfg})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

// El mismo ID en colecciones distintas no es conflicto: la unicidad es por
// colección.
func TestPlanSave_MismoIDEnColeccionesDistintas(t *testing.T) {
	uc := usecase.NewPlanUseCase(memory.NewPlanRepository())
	cfg := entity.BusinessConfig{
		Catalog: []entity.CatalogItem{{ID: "x", Name: "A", UnitCost: 10}},
		Staff:   []entity.StaffMember{{ID: "x", Role: "Gerente", BasicPay: 1000}},
	}

	_, err := uc.Save(context.Background(), testUserID, dto.SavePlanRequest{Config: cfg})
	require.NoError(t, err)
}

// El guardado reemplaza el documento entero: el último escribe gana.
func TestPlanSave_LastWriteWins(t *testing.T) {
	uc := usecase.NewPlanUseCase(memory.NewPlanRepository())
	ctx := context.Background()

	first := usecase.DefaultBusinessConfig()
	first.Investment = 1000
	_, err := uc.Save(ctx, testUserID, dto.SavePlanRequest{Config: first})
	require.NoError(t, err)

	second := usecase.DefaultBusinessConfig()
	second.Investment = 2000
	second.Catalog = second.Catalog[:1]
	_, err = uc.Save(ctx, testUserID, dto.SavePlanRequest{Config: second})
	require.NoError(t, err)

	out, err := uc.Get(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, out.Config.Investment)
	assert.Len(t, out.Config.Catalog, 1, "el documento anterior no se mezcla con el nuevo")
}
