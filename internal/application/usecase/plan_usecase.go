package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Planfin-api/internal/application/dto"
	"github.com/jhoicas/Planfin-api/internal/domain"
	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/domain/repository"
)

// PlanUseCase administra el documento de plan de negocio del usuario:
// lectura (con semilla por defecto si nunca guardó) y guardado last-write-wins.
type PlanUseCase struct {
	planRepo repository.PlanRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(planRepo repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{planRepo: planRepo}
}

// Get devuelve el plan del usuario. Si todavía no guardó ninguno, responde la
// configuración semilla de demostración sin persistirla (UpdatedAt nil).
func (uc *PlanUseCase) Get(ctx context.Context, userID string) (*dto.PlanResponse, error) {
	doc, err := uc.planRepo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cargar plan: %w", err)
	}
	if doc == nil {
		return &dto.PlanResponse{
			SchemaVersion: entity.PlanSchemaVersion,
			Config:        DefaultBusinessConfig(),
		}, nil
	}
	return toPlanResponse(doc), nil
}

// Save valida y persiste el plan completo del usuario. Asigna IDs estables a
// los ítems nuevos de cada colección; un ID repetido dentro de su colección
// es ErrDuplicate. La recomputación de la proyección es siempre total, así que
// no hay camino de actualización parcial.
func (uc *PlanUseCase) Save(ctx context.Context, userID string, in dto.SavePlanRequest) (*dto.SavePlanResponse, error) {
	cfg := in.Config
	if err := assignItemIDs(&cfg); err != nil {
		return nil, err
	}

	doc := &entity.PlanDocument{
		UserID:        userID,
		SchemaVersion: entity.PlanSchemaVersion,
		Config:        cfg,
		UpdatedAt:     time.Now(),
	}
	if err := uc.planRepo.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("guardar plan: %w", err)
	}
	return &dto.SavePlanResponse{
		Status: "succeeded",
		Plan:   *toPlanResponse(doc),
	}, nil
}

// assignItemIDs da un UUID a cada ítem sin ID y verifica unicidad por
// colección. Los IDs los provee el caller o se generan acá: nunca derivados
// de timestamps, y no se reutilizan tras un borrado.
func assignItemIDs(cfg *entity.BusinessConfig) error {
	seen := make(map[string]bool)
	check := func(collection, id string) error {
		key := collection + ":" + id
		if seen[key] {
			return fmt.Errorf("%w: id %q repetido en %s", domain.ErrDuplicate, id, collection)
		}
		seen[key] = true
		return nil
	}

	for i := range cfg.Catalog {
		if cfg.Catalog[i].ID == "" {
			cfg.Catalog[i].ID = uuid.New().String()
		}
		if err := check("catalog", cfg.Catalog[i].ID); err != nil {
			return err
		}
	}
	for i := range cfg.Staff {
		if cfg.Staff[i].ID == "" {
			cfg.Staff[i].ID = uuid.New().String()
		}
		if err := check("staff", cfg.Staff[i].ID); err != nil {
			return err
		}
	}
	for i := range cfg.FixedCosts {
		if cfg.FixedCosts[i].ID == "" {
			cfg.FixedCosts[i].ID = uuid.New().String()
		}
		if err := check("fixed_costs", cfg.FixedCosts[i].ID); err != nil {
			return err
		}
	}
	for i := range cfg.Assets {
		if cfg.Assets[i].ID == "" {
			cfg.Assets[i].ID = uuid.New().String()
		}
		if err := check("assets", cfg.Assets[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func toPlanResponse(doc *entity.PlanDocument) *dto.PlanResponse {
	updated := doc.UpdatedAt
	return &dto.PlanResponse{
		SchemaVersion: doc.SchemaVersion,
		Config:        doc.Config,
		UpdatedAt:     &updated,
	}
}

// DefaultBusinessConfig la configuración semilla de demostración que ve un
// usuario nuevo: un negocio chico con dos productos, dos puestos de nómina,
// un préstamo a 12 meses y estacionalidad neutra.
func DefaultBusinessConfig() entity.BusinessConfig {
	seasonality := make([]float64, entity.SeasonalityPeriods)
	for i := range seasonality {
		seasonality[i] = 1
	}
	return entity.BusinessConfig{
		Investment:           50000,
		DiscountRatePercent:  15,
		InflationRatePercent: 5,

		IncomeTaxRatePercent:     30,
		SalesTaxRatePercent:      21,
		TurnoverTaxRatePercent:   3.5,
		PaymentGatewayFeePercent: 5,

		SafetyStockMonths:       1,
		CustomerAcquisitionCost: 50,
		CollectionDelayDays:     0,

		InitialMonthlyUnits:       500,
		MonthlySalesGrowthPercent: 3,

		Loan: entity.LoanTerms{Principal: 10000, AnnualRatePercent: 45, TermMonths: 12},

		Catalog: []entity.CatalogItem{
			{ID: uuid.New().String(), Name: "Producto A", UnitCost: 100, MarginPercent: 40},
			{ID: uuid.New().String(), Name: "Servicio B", UnitCost: 50, MarginPercent: 150},
		},
		Staff: []entity.StaffMember{
			{ID: uuid.New().String(), Role: "Gerente", BasicPay: 2000, AdditionalPay: 500, EmployerTaxRatePercent: 25},
			{ID: uuid.New().String(), Role: "Ventas", BasicPay: 1000, AdditionalPay: 200, EmployerTaxRatePercent: 25},
		},
		FixedCosts: []entity.FixedCostLine{
			{ID: uuid.New().String(), Label: "Alquiler", MonthlyAmount: 1500},
			{ID: uuid.New().String(), Label: "Software / SaaS", MonthlyAmount: 300},
		},
		Assets: []entity.FixedAsset{
			{ID: uuid.New().String(), Name: "Maquinaria", AcquisitionValue: 20000, UsefulLifeYears: 5},
		},

		SeasonalityFactors: seasonality,
		Scenario:           entity.ScenarioBase,
	}
}
