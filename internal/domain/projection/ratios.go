package projection

import (
	"math"

	"github.com/jhoicas/Planfin-api/internal/domain/entity"
)

// businessDaysPerMonth días hábiles usados para la meta diaria de ventas.
const businessDaysPerMonth = 22

// Ratios métricas operativas derivadas del Summary. Se calculan fuera del
// motor porque son proyecciones de solo lectura de totales ya computados.
type Ratios struct {
	UnitMargin float64 // precio promedio - costo promedio

	// Con margen unitario <= 0 el punto de equilibrio no existe: Defined queda
	// en false y las metas en 0 (nunca se divide por cero ni por negativo).
	BreakEvenDefined bool
	BreakEvenUnits   float64 // unidades/mes para cubrir la base de costos fijos
	DailyGoalUnits   float64 // unidades por día hábil, redondeo hacia arriba
	DailyGoalRevenue float64 // facturación mínima diaria equivalente

	// DSCR: EBITDA mensual promedio sobre el servicio de deuda del período 1
	// (interés + capital). Sin préstamo el denominador es 1.
	DSCR float64
}

// ComputeRatios deriva los ratios operativos a partir del resumen y las
// condiciones del préstamo.
func ComputeRatios(s *Summary, loan entity.LoanTerms) Ratios {
	r := Ratios{UnitMargin: s.AverageUnitPrice - s.AverageUnitCost}

	if r.UnitMargin > 0 {
		r.BreakEvenDefined = true
		r.BreakEvenUnits = s.MonthlyFixedCostBase / r.UnitMargin
		r.DailyGoalUnits = math.Ceil(r.BreakEvenUnits / businessDaysPerMonth)
		r.DailyGoalRevenue = r.DailyGoalUnits * s.AverageUnitPrice
	}

	avgMonthlyEBITDA := s.TotalEBITDA / Horizon
	debtService := 1.0
	if loan.Principal > 0 && len(s.Months) > 0 {
		if ds := s.Months[0].InterestExpense + s.Months[0].PrincipalRepayment; ds > 0 {
			debtService = ds
		}
	}
	r.DSCR = avgMonthlyEBITDA / debtService

	return r
}
