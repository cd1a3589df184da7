package projection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/domain/projection"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// baseTestConfig un negocio mínimo verificable a mano: un producto de costo 100
// con margen 40%, 500 unidades iniciales, 3% de crecimiento y 5% de inflación
// mensual. Sin nómina, costos fijos, activos, préstamo ni fricciones de caja.
//
// Período 1 esperado:
//
//	infl    = 1.05
//	precio  = 140 * 1.05 = 147
//	costo   = 100 * 1.05 = 105
//	ventas  = 500 * 147  = 73 500
//	EBITDA  = 73 500 - 52 500 = 21 000
func baseTestConfig() entity.BusinessConfig {
	return entity.BusinessConfig{
		InflationRatePercent:      5,
		InitialMonthlyUnits:       500,
		MonthlySalesGrowthPercent: 3,
		Catalog: []entity.CatalogItem{
			{ID: "p1", Name: "Producto A", UnitCost: 100, MarginPercent: 40},
		},
		Scenario: entity.ScenarioBase,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Totalidad y determinismo
// ──────────────────────────────────────────────────────────────────────────────

// La configuración cero no debe romper nada: 12 períodos de ceros, sin NaN,
// y payback en el mes 1 porque la caja arranca en 0 (sin inversión que
// recuperar, el umbral se cruza de inmediato).
func TestCompute_ConfiguracionCero(t *testing.T) {
	s := projection.Compute(entity.BusinessConfig{}, "")

	require.Len(t, s.Months, projection.Horizon)
	for _, m := range s.Months {
		assert.Zero(t, m.Revenue, "sin catálogo no hay ingresos en el mes %d", m.Period)
		assert.Zero(t, m.CashFlow)
		assert.False(t, math.IsNaN(m.CumulativeCash), "ningún campo debe degradar a NaN")
	}
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.TerminalValue)
	assert.Zero(t, s.NetPresentValue)
	assert.Equal(t, 1, s.PaybackPeriod, "caja inicial 0 cruza el umbral en el período 1")
}

// Compute es pura: no muta la configuración de entrada y con la misma entrada
// produce siempre el mismo resumen.
func TestCompute_PuraYDeterminista(t *testing.T) {
	cfg := baseTestConfig()
	cfg.SeasonalityFactors = []float64{1.1, 0.9, 1, 1, 1.2, 1, 1, 0.8, 1, 1, 1, 1.3}
	snapshot := cfg
	snapshotSeasonality := append([]float64(nil), cfg.SeasonalityFactors...)

	s1 := projection.Compute(cfg, "")
	s2 := projection.Compute(cfg, "")

	require.Equal(t, s1, s2, "la misma entrada debe producir el mismo resumen")
	assert.Equal(t, snapshot.Investment, cfg.Investment)
	assert.Equal(t, snapshotSeasonality, cfg.SeasonalityFactors,
		"Compute no debe mutar los factores de estacionalidad del caller")
}

// ──────────────────────────────────────────────────────────────────────────────
// Motor período a período
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia calculado a mano para el negocio mínimo (ver helper).
func TestCompute_VectorReferencia(t *testing.T) {
	s := projection.Compute(baseTestConfig(), "")

	m1 := s.Months[0]
	require.InDelta(t, 500, m1.UnitsSold, 1e-9)
	require.InDelta(t, 73500, m1.Revenue, 1e-6, "ventas mes 1: 500 * 140 * 1.05")
	require.InDelta(t, 21000, m1.EBITDA, 1e-6)
	require.InDelta(t, 21000, m1.NetIncome, 1e-6, "sin impuesto a las ganancias configurado")
	require.InDelta(t, 21000, m1.CashFlow, 1e-6, "sin depreciación, deuda ni fricciones")

	// Mes 2: la tendencia compone 3% y la inflación 5% sobre precio y costo.
	m2 := s.Months[1]
	require.InDelta(t, 515, m2.UnitsSold, 1e-9)
	require.InDelta(t, 515*140*1.05*1.05, m2.Revenue, 1e-6)

	assert.InDelta(t, 140, s.AverageUnitPrice, 1e-9, "precio promedio sin inflar")
	assert.InDelta(t, 100, s.AverageUnitCost, 1e-9)
	assert.Equal(t, 1, s.PaybackPeriod)
}

// El precio promedio se deriva del promedio de márgenes, no del promedio de
// precios: con costos 100 (40%) y 50 (150%), el margen promedio es 95% sobre
// un costo promedio de 75 → precio 146.25 (y no (140+125)/2 = 132.5).
func TestCompute_PrecioPromedioPorMargenPromedio(t *testing.T) {
	cfg := baseTestConfig()
	cfg.Catalog = []entity.CatalogItem{
		{ID: "p1", UnitCost: 100, MarginPercent: 40},
		{ID: "p2", UnitCost: 50, MarginPercent: 150},
	}

	s := projection.Compute(cfg, "")

	assert.InDelta(t, 75, s.AverageUnitCost, 1e-9)
	assert.InDelta(t, 146.25, s.AverageUnitPrice, 1e-9)
}

// Amortización lineal: un préstamo de 12 000 a 12 meses paga 1 000 de capital
// por mes, el interés corre sobre saldo decreciente y el saldo termina en 0.
func TestCompute_PrestamoAmortizaCompleto(t *testing.T) {
	cfg := baseTestConfig()
	cfg.Investment = 12000
	cfg.Loan = entity.LoanTerms{Principal: 12000, AnnualRatePercent: 12, TermMonths: 12}

	s := projection.Compute(cfg, "")

	var totalPrincipal float64
	for _, m := range s.Months {
		totalPrincipal += m.PrincipalRepayment
	}
	require.InDelta(t, 12000, totalPrincipal, 1e-6, "el capital devuelto debe igualar el principal")
	assert.InDelta(t, 0, s.Months[11].LoanBalance, 1e-6, "saldo final en cero")

	// Interés mes 1: 12 000 * 1% = 120. Mes 12: 1 000 * 1% = 10.
	assert.InDelta(t, 120, s.Months[0].InterestExpense, 1e-6)
	assert.InDelta(t, 10, s.Months[11].InterestExpense, 1e-6)
}

// Plazo 0: no se amortiza capital pero el interés sigue corriendo sobre el
// saldo completo los 12 meses.
func TestCompute_PrestamoSinPlazoSoloInteres(t *testing.T) {
	cfg := baseTestConfig()
	cfg.Loan = entity.LoanTerms{Principal: 10000, AnnualRatePercent: 24, TermMonths: 0}

	s := projection.Compute(cfg, "")

	for _, m := range s.Months {
		assert.Zero(t, m.PrincipalRepayment, "mes %d", m.Period)
		assert.InDelta(t, 200, m.InterestExpense, 1e-9, "interés fijo sobre saldo completo, mes %d", m.Period)
	}
	assert.InDelta(t, 10000, s.Months[11].LoanBalance, 1e-9)
}

// Aguinaldo: con un sueldo de 1 000 y carga patronal del 25% (sin inflación),
// la nómina es 1 250 todos los meses salvo junio y diciembre, donde el medio
// sueldo extra la lleva a 1 875. La carga patronal aplica sobre el total.
func TestCompute_AguinaldoJunioYDiciembre(t *testing.T) {
	cfg := entity.BusinessConfig{
		Staff: []entity.StaffMember{
			{ID: "s1", Role: "Operario", BasicPay: 1000, AdditionalPay: 0, EmployerTaxRatePercent: 25},
		},
	}

	s := projection.Compute(cfg, "")

	for _, m := range s.Months {
		if m.Period == 6 || m.Period == 12 {
			assert.InDelta(t, -1875, m.EBITDA, 1e-9, "mes %d con aguinaldo", m.Period)
			continue
		}
		assert.InDelta(t, -1250, m.EBITDA, 1e-9, "mes %d sin aguinaldo", m.Period)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

// Los escenarios escalan el volumen mes a mes: optimista x1.25 y pesimista
// x0.75 sobre las ventas del escenario base, sin tocar precios.
func TestCompute_EscenariosProporcionales(t *testing.T) {
	cfg := baseTestConfig()

	base := projection.Compute(cfg, entity.ScenarioBase)
	opt := projection.Compute(cfg, entity.ScenarioOptimistic)
	pes := projection.Compute(cfg, entity.ScenarioPessimistic)

	for i := range base.Months {
		assert.InDelta(t, base.Months[i].Revenue*1.25, opt.Months[i].Revenue, 1e-6,
			"ventas optimistas mes %d", i+1)
		assert.InDelta(t, base.Months[i].Revenue*0.75, pes.Months[i].Revenue, 1e-6,
			"ventas pesimistas mes %d", i+1)
	}
}

// El override manda sobre el escenario guardado en la configuración, y un
// selector no reconocido se trata como base.
func TestCompute_OverrideDeEscenario(t *testing.T) {
	cfg := baseTestConfig()
	cfg.Scenario = entity.ScenarioPessimistic

	conOverride := projection.Compute(cfg, entity.ScenarioOptimistic)
	optimista := projection.Compute(baseTestConfig(), entity.ScenarioOptimistic)
	require.Equal(t, optimista.TotalRevenue, conOverride.TotalRevenue)

	desconocido := projection.Compute(baseTestConfig(), entity.Scenario("agresivo"))
	base := projection.Compute(baseTestConfig(), entity.ScenarioBase)
	assert.Equal(t, base.TotalRevenue, desconocido.TotalRevenue,
		"un escenario no reconocido se proyecta como base")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fricciones de caja
// ──────────────────────────────────────────────────────────────────────────────

// Rezago de cobranza: cada mes cobra los ingresos del anterior, así que la
// diferencia acumulada a fin de año es exactamente la facturación del mes 12
// (la suma de deltas de cuentas por cobrar telescopea).
func TestCompute_RezagoDeCobranzaTelescopea(t *testing.T) {
	inmediato := projection.Compute(baseTestConfig(), "")

	cfg := baseTestConfig()
	cfg.CollectionDelayDays = 45
	diferido := projection.Compute(cfg, "")

	rev12 := inmediato.Months[11].Revenue
	require.InDelta(t,
		inmediato.Months[11].CumulativeCash-rev12,
		diferido.Months[11].CumulativeCash,
		1e-6,
		"la caja acumulada diferida debe ser la inmediata menos las ventas del mes 12")

	// Un rezago menor a 30 días no difiere nada.
	cfg.CollectionDelayDays = 15
	corto := projection.Compute(cfg, "")
	assert.InDelta(t, inmediato.Months[11].CumulativeCash, corto.Months[11].CumulativeCash, 1e-6)
}

// Stock de seguridad: el inventario objetivo del mes 1 se arma con las
// unidades del mes siguiente valuadas al costo inflado del mes en curso.
func TestCompute_InventarioObjetivoMesSiguiente(t *testing.T) {
	cfg := baseTestConfig()
	cfg.SafetyStockMonths = 1

	s := projection.Compute(cfg, "")

	// nextUnits = 500 * 1.03 = 515, costo mes 1 = 105.
	assert.InDelta(t, 515*105, s.Months[0].InventoryValue, 1e-6)
}

// ──────────────────────────────────────────────────────────────────────────────
// Valuación
// ──────────────────────────────────────────────────────────────────────────────

// Con tasa de descuento mensual mayor al crecimiento aplica la perpetuidad de
// Gordon; si no, el fallback plano de 12x el último flujo.
func TestCompute_ValorTerminalGordonYFallback(t *testing.T) {
	gordon := baseTestConfig()
	gordon.DiscountRatePercent = 60 // 5% mensual > 3% de crecimiento
	sGordon := projection.Compute(gordon, "")
	cf12 := sGordon.Months[11].CashFlow
	require.Positive(t, cf12)
	assert.InDelta(t, cf12*1.03/0.02, sGordon.TerminalValue, 1e-6)

	flat := baseTestConfig()
	flat.DiscountRatePercent = 5 // ~0.42% mensual <= 3% de crecimiento
	sFlat := projection.Compute(flat, "")
	assert.InDelta(t, sFlat.Months[11].CashFlow*12, sFlat.TerminalValue, 1e-6)
}

// El VAN heurístico mezcla caja acumulada del mes 12 con medio valor terminal.
func TestCompute_VANMezclaMedioTerminal(t *testing.T) {
	cfg := baseTestConfig()
	cfg.DiscountRatePercent = 60

	s := projection.Compute(cfg, "")

	assert.InDelta(t, s.Months[11].CumulativeCash+s.TerminalValue*0.5, s.NetPresentValue, 1e-6)
}

// El retorno simple es resultado retenido sobre inversión, no una TIR.
func TestCompute_RetornoSimpleSobreInversion(t *testing.T) {
	cfg := baseTestConfig()
	cfg.Investment = 50000

	s := projection.Compute(cfg, "")

	var retained float64
	for _, m := range s.Months {
		retained += m.NetIncome
	}
	assert.InDelta(t, retained/50000*100, s.SimpleReturnPercent, 1e-6)

	// Sin inversión el retorno queda en 0 en lugar de dividir por cero.
	cfg.Investment = 0
	assert.Zero(t, projection.Compute(cfg, "").SimpleReturnPercent)
}

// Payback 0 significa "nunca dentro del horizonte": un negocio a pura pérdida
// con inversión propia no recupera la caja.
func TestCompute_PaybackNuncaDentroDelHorizonte(t *testing.T) {
	cfg := entity.BusinessConfig{
		Investment: 100000,
		FixedCosts: []entity.FixedCostLine{{ID: "f1", Label: "Alquiler", MonthlyAmount: 2000}},
	}

	s := projection.Compute(cfg, "")

	assert.Equal(t, 0, s.PaybackPeriod)
	assert.Negative(t, s.Months[11].CumulativeCash)
}

// El impuesto a las ganancias solo grava resultados positivos: con pérdida
// el resultado neto es el resultado antes de impuestos sin escudo fiscal.
func TestCompute_ImpuestoSoloSobreGanancia(t *testing.T) {
	perdida := entity.BusinessConfig{
		IncomeTaxRatePercent: 30,
		FixedCosts:           []entity.FixedCostLine{{ID: "f1", Label: "Alquiler", MonthlyAmount: 1000}},
	}
	s := projection.Compute(perdida, "")
	assert.InDelta(t, -1000, s.Months[0].NetIncome, 1e-9, "la pérdida no genera crédito fiscal")

	ganancia := baseTestConfig()
	ganancia.IncomeTaxRatePercent = 30
	sg := projection.Compute(ganancia, "")
	assert.InDelta(t, 21000*0.7, sg.Months[0].NetIncome, 1e-6)
}
