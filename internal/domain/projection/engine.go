package projection

import (
	"math"

	"github.com/jhoicas/Planfin-api/internal/domain/entity"
)

// Meses con pago de aguinaldo (SAC): medio sueldo extra en junio y diciembre.
const (
	sacFirstMonth  = 6
	sacSecondMonth = 12
	sacFactor      = 0.5
)

// Peso del valor terminal en el VAN heurístico. La mezcla 50/50 viene del
// modelo original y no tiene justificación financiera formal; ver Summary.
const npvTerminalWeight = 0.5

// Compute corre la proyección completa: normaliza la configuración, resuelve
// el escenario (override tiene prioridad si no está vacío) e itera los 12
// períodos acumulando estado, para finalmente agregar totales y valuación.
//
// Es una función pura: nunca muta cfg, nunca entra en pánico para ninguna
// configuración estructuralmente válida, y con la misma entrada produce
// siempre el mismo Summary.
func Compute(cfg entity.BusinessConfig, override entity.Scenario) *Summary {
	c := Normalize(cfg)

	scenario := c.Scenario
	if override != "" {
		scenario = override
	}
	sMult := ScenarioMultiplier(scenario)

	avgCost, avgPrice := catalogAverages(c.Catalog)
	monthlyDepreciation := monthlyStraightLineDepreciation(c.Assets)

	fixedCostBase := 0.0
	for _, f := range c.FixedCosts {
		fixedCostBase += f.MonthlyAmount
	}

	growthRate := c.MonthlySalesGrowthPercent / 100
	inflationRate := c.InflationRatePercent / 100
	taxRate := c.IncomeTaxRatePercent / 100
	turnoverRate := c.TurnoverTaxRatePercent / 100
	gatewayRate := c.PaymentGatewayFeePercent / 100
	monthlyLoanRate := c.Loan.AnnualRatePercent / 100 / 12

	// Estado acumulado entre períodos.
	unitTrend := c.InitialMonthlyUnits
	ownerEquity := c.Investment - c.Loan.Principal
	cumulativeCash := -ownerEquity
	loanBalance := c.Loan.Principal
	accumulatedDepreciation := 0.0
	retainedEarnings := 0.0
	prevRevenue := 0.0 // ingresos del período anterior, para el rezago de cobranza
	payback := 0

	months := make([]MonthlyProjection, 0, Horizon)

	for m := 1; m <= Horizon; m++ {
		// La inflación compone desde el período 1 inclusive.
		infl := math.Pow(1+inflationRate, float64(m))
		units := unitTrend * c.SeasonalityFactors[m-1] * sMult

		price := avgPrice * infl
		unitCost := avgCost * infl
		revenue := units * price
		cogs := units * unitCost

		turnoverTax := revenue * turnoverRate
		gatewayFee := revenue * gatewayRate
		// Marketing variable: costo de adquirir las unidades incrementales del
		// mes, no un costo constante por unidad vendida.
		marketing := units * growthRate * c.CustomerAcquisitionCost * infl
		fixedCosts := fixedCostBase * infl

		payroll := 0.0
		for _, s := range c.Staff {
			base := (s.BasicPay + s.AdditionalPay) * infl
			bonus := 0.0
			if m == sacFirstMonth || m == sacSecondMonth {
				bonus = base * sacFactor
			}
			// La carga patronal se aplica sobre el total incluyendo aguinaldo.
			payroll += (base + bonus) * (1 + s.EmployerTaxRatePercent/100)
		}

		ebitda := revenue - cogs - payroll - fixedCosts - turnoverTax - gatewayFee - marketing

		interest := 0.0
		if loanBalance > 0 {
			interest = loanBalance * monthlyLoanRate
		}
		// Amortización lineal de capital. Con plazo 0 no se amortiza capital
		// pero el interés sigue corriendo sobre el saldo completo.
		principalRepayment := 0.0
		if c.Loan.TermMonths > 0 && float64(m) <= c.Loan.TermMonths {
			principalRepayment = c.Loan.Principal / c.Loan.TermMonths
		}
		loanBalance = math.Max(0, loanBalance-principalRepayment)

		preTaxIncome := ebitda - monthlyDepreciation - interest
		tax := 0.0
		if preTaxIncome > 0 {
			tax = preTaxIncome * taxRate
		}
		netIncome := preTaxIncome - tax

		// Cobranza: con rezago >= 30 días el mes cobra los ingresos del mes
		// anterior (el primero cobra 0); si no, se cobra de inmediato.
		collected := revenue
		if c.CollectionDelayDays >= 30 {
			collected = prevRevenue
		}
		receivablesDelta := revenue - collected

		// Stock de seguridad: el objetivo se arma con las unidades proyectadas
		// del mes siguiente (estacionalidad cíclica por índice de período).
		// Construir stock consume caja; liberarlo la devuelve.
		nextUnits := unitTrend * (1 + growthRate) * c.SeasonalityFactors[m%entity.SeasonalityPeriods] * sMult
		targetInventory := nextUnits * unitCost * c.SafetyStockMonths
		currentInventory := units * unitCost * c.SafetyStockMonths
		inventoryDelta := targetInventory - currentInventory

		cashFlow := netIncome + monthlyDepreciation - principalRepayment - inventoryDelta - receivablesDelta
		cumulativeCash += cashFlow
		accumulatedDepreciation += monthlyDepreciation
		retainedEarnings += netIncome
		prevRevenue = revenue

		if payback == 0 && cumulativeCash >= 0 {
			payback = m
		}

		months = append(months, MonthlyProjection{
			Period:             m,
			UnitsSold:          units,
			Revenue:            revenue,
			EBITDA:             ebitda,
			NetIncome:          netIncome,
			InterestExpense:    interest,
			PrincipalRepayment: principalRepayment,
			CashFlow:           cashFlow,
			CumulativeCash:     cumulativeCash,
			LoanBalance:        loanBalance,
			Equity:             ownerEquity + retainedEarnings,
			InventoryValue:     targetInventory,
			NetFixedAssetValue: c.Investment - accumulatedDepreciation,
		})

		// El crecimiento compone sobre la tendencia pre-estacionalidad,
		// independiente de los multiplicadores del período en curso.
		unitTrend *= 1 + growthRate
	}

	return aggregate(c, months, retainedEarnings, fixedCostBase, avgPrice, avgCost, payback)
}

// aggregate pliega los 12 períodos en el Summary: totales, valor terminal,
// VAN heurístico y las bases para ratios operativos.
func aggregate(
	c entity.BusinessConfig,
	months []MonthlyProjection,
	retainedEarnings, fixedCostBase, avgPrice, avgCost float64,
	payback int,
) *Summary {
	var totalRevenue, totalEBITDA float64
	for _, m := range months {
		totalRevenue += m.Revenue
		totalEBITDA += m.EBITDA
	}

	r := c.DiscountRatePercent / 100 / 12 // tasa de descuento mensual
	g := c.MonthlySalesGrowthPercent / 100
	last := months[len(months)-1]

	// Perpetuidad de Gordon solo cuando r > g; el fallback plano evita valores
	// terminales negativos o explosivos cuando r <= g.
	var terminal float64
	if r > g {
		terminal = last.CashFlow * (1 + g) / (r - g)
	} else {
		terminal = last.CashFlow * Horizon
	}

	simpleReturn := 0.0
	if c.Investment > 0 {
		simpleReturn = retainedEarnings / c.Investment * 100
	}

	// Nómina a valores base representativos: sin inflación ni aguinaldo,
	// con carga patronal incluida.
	payrollBase := 0.0
	for _, s := range c.Staff {
		payrollBase += (s.BasicPay + s.AdditionalPay) * (1 + s.EmployerTaxRatePercent/100)
	}

	return &Summary{
		Months:               months,
		TotalRevenue:         totalRevenue,
		TotalEBITDA:          totalEBITDA,
		AverageUnitPrice:     avgPrice,
		AverageUnitCost:      avgCost,
		MonthlyFixedCostBase: fixedCostBase + payrollBase,
		PaybackPeriod:        payback,
		TerminalValue:        terminal,
		NetPresentValue:      last.CumulativeCash + terminal*npvTerminalWeight,
		SimpleReturnPercent:  simpleReturn,
	}
}

// catalogAverages promedia costo y margen del catálogo y deriva el precio
// promedio. Catálogo vacío → costo y precio 0 (ingresos nulos todo el año).
func catalogAverages(catalog []entity.CatalogItem) (avgCost, avgPrice float64) {
	if len(catalog) == 0 {
		return 0, 0
	}
	var sumCost, sumMargin float64
	for _, p := range catalog {
		sumCost += p.UnitCost
		sumMargin += p.MarginPercent
	}
	n := float64(len(catalog))
	avgCost = sumCost / n
	avgMargin := sumMargin / n
	return avgCost, avgCost * (1 + avgMargin/100)
}

// monthlyStraightLineDepreciation suma la depreciación lineal mensual de los
// activos. Vida útil no positiva se trata como 1 año (guardia de división).
func monthlyStraightLineDepreciation(assets []entity.FixedAsset) float64 {
	total := 0.0
	for _, a := range assets {
		life := a.UsefulLifeYears
		if life <= 0 {
			life = 1
		}
		total += a.AcquisitionValue / (life * 12)
	}
	return total
}
