// Package projection implementa el motor de proyección financiera mensual:
// una función pura y determinista que transforma una BusinessConfig en una
// proyección de 12 períodos más métricas de resumen.
//
// Cuatro etapas compuestas en secuencia, sin estado compartido entre corridas:
//
//	Normalize → ScenarioMultiplier → iterador de períodos → agregador
//
// El flujo de datos es unidireccional; el motor no conoce la capa HTTP ni la
// de persistencia. Volver a correr con la misma configuración produce un
// resultado idéntico byte a byte.
package projection

// Horizon cantidad de períodos proyectados (meses 1..12, el primer año).
const Horizon = 12

// MonthlyProjection es el snapshot de un período: estado de resultados,
// flujo de caja y fragmentos de balance a fin de mes.
type MonthlyProjection struct {
	Period             int     // 1..12
	UnitsSold          float64 // unidades realizadas (tendencia × estacionalidad × escenario)
	Revenue            float64
	EBITDA             float64
	NetIncome          float64
	InterestExpense    float64
	PrincipalRepayment float64
	CashFlow           float64
	CumulativeCash     float64
	LoanBalance        float64
	Equity             float64 // aporte de capital + resultados acumulados
	InventoryValue     float64 // stock de seguridad objetivo a fin de mes
	NetFixedAssetValue float64 // inversión - depreciación acumulada
}

// Summary es el resultado completo de una corrida del motor: los 12 períodos
// más los totales, la valuación y las bases para ratios operativos.
type Summary struct {
	Months []MonthlyProjection

	TotalRevenue float64
	TotalEBITDA  float64

	AverageUnitPrice float64
	AverageUnitCost  float64

	// Costos fijos + nómina con carga patronal, a valores base (sin inflación
	// ni aguinaldo). Es la base del punto de equilibrio.
	MonthlyFixedCostBase float64

	// Primer período con caja acumulada >= 0; 0 si no se alcanza en el horizonte.
	PaybackPeriod int

	// Valor terminal: perpetuidad de Gordon cuando la tasa de descuento mensual
	// supera la de crecimiento; si no, anualización plana (12×) del último flujo.
	TerminalValue float64

	// VAN heurístico: caja acumulada del período 12 + 50% del valor terminal.
	// No es un DCF riguroso período a período; se reporta como estimación.
	NetPresentValue float64

	// Retorno simple: resultados retenidos / inversión × 100. NO es una TIR
	// real (no hay búsqueda de raíz); se mantiene como heurística del modelo
	// original, claramente etiquetada.
	SimpleReturnPercent float64
}
