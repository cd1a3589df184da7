package projection

import (
	"math"

	"github.com/jhoicas/Planfin-api/internal/domain/entity"
)

// Normalize devuelve una copia de la configuración donde todo escalar es un
// número finito (NaN/±Inf → 0) y toda colección esperada existe. La política
// es deliberada: el dato ausente o inválido se vuelve "sin efecto" en silencio,
// nunca un error, para que el motor sea total bajo entrada adversa.
//
// Es idempotente: Normalize(Normalize(c)) == Normalize(c).
func Normalize(cfg entity.BusinessConfig) entity.BusinessConfig {
	out := cfg

	out.Investment = finite(cfg.Investment)
	out.DiscountRatePercent = finite(cfg.DiscountRatePercent)
	out.InflationRatePercent = finite(cfg.InflationRatePercent)
	out.IncomeTaxRatePercent = finite(cfg.IncomeTaxRatePercent)
	out.SalesTaxRatePercent = finite(cfg.SalesTaxRatePercent)
	out.TurnoverTaxRatePercent = finite(cfg.TurnoverTaxRatePercent)
	out.PaymentGatewayFeePercent = finite(cfg.PaymentGatewayFeePercent)
	out.SafetyStockMonths = finite(cfg.SafetyStockMonths)
	out.CustomerAcquisitionCost = finite(cfg.CustomerAcquisitionCost)
	out.CollectionDelayDays = finite(cfg.CollectionDelayDays)
	out.InitialMonthlyUnits = finite(cfg.InitialMonthlyUnits)
	out.MonthlySalesGrowthPercent = finite(cfg.MonthlySalesGrowthPercent)

	out.Loan = entity.LoanTerms{
		Principal:         finite(cfg.Loan.Principal),
		AnnualRatePercent: finite(cfg.Loan.AnnualRatePercent),
		TermMonths:        finite(cfg.Loan.TermMonths),
	}

	out.Catalog = make([]entity.CatalogItem, len(cfg.Catalog))
	for i, p := range cfg.Catalog {
		p.UnitCost = finite(p.UnitCost)
		p.MarginPercent = finite(p.MarginPercent)
		out.Catalog[i] = p
	}

	out.Staff = make([]entity.StaffMember, len(cfg.Staff))
	for i, s := range cfg.Staff {
		s.BasicPay = finite(s.BasicPay)
		s.AdditionalPay = finite(s.AdditionalPay)
		s.EmployerTaxRatePercent = finite(s.EmployerTaxRatePercent)
		out.Staff[i] = s
	}

	out.FixedCosts = make([]entity.FixedCostLine, len(cfg.FixedCosts))
	for i, f := range cfg.FixedCosts {
		f.MonthlyAmount = finite(f.MonthlyAmount)
		out.FixedCosts[i] = f
	}

	out.Assets = make([]entity.FixedAsset, len(cfg.Assets))
	for i, a := range cfg.Assets {
		a.AcquisitionValue = finite(a.AcquisitionValue)
		a.UsefulLifeYears = finite(a.UsefulLifeYears)
		out.Assets[i] = a
	}

	out.SeasonalityFactors = normalizeSeasonality(cfg.SeasonalityFactors)

	return out
}

// normalizeSeasonality garantiza el invariante: exactamente 12 factores, cada
// uno finito y > 0. Longitud incorrecta → los 12 neutros; factor inválido → 1.
func normalizeSeasonality(factors []float64) []float64 {
	out := make([]float64, entity.SeasonalityPeriods)
	if len(factors) != entity.SeasonalityPeriods {
		for i := range out {
			out[i] = 1
		}
		return out
	}
	for i, f := range factors {
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			out[i] = 1
			continue
		}
		out[i] = f
	}
	return out
}

// finite colapsa NaN y ±Inf a cero; cualquier otro valor pasa sin cambios.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
