package dto

import "github.com/shopspring/decimal"

// MonthlyProjectionDTO un período de la proyección, redondeado a 2 decimales
// para presentación (el motor trabaja sin redondeo interno).
type MonthlyProjectionDTO struct {
	Period             int             `json:"period"`
	UnitsSold          decimal.Decimal `json:"units_sold"`
	Revenue            decimal.Decimal `json:"revenue"`
	EBITDA             decimal.Decimal `json:"ebitda"`
	NetIncome          decimal.Decimal `json:"net_income"`
	InterestExpense    decimal.Decimal `json:"interest_expense"`
	PrincipalRepayment decimal.Decimal `json:"principal_repayment"`
	CashFlow           decimal.Decimal `json:"cash_flow"`
	CumulativeCash     decimal.Decimal `json:"cumulative_cash"`
	LoanBalance        decimal.Decimal `json:"loan_balance"`
	Equity             decimal.Decimal `json:"equity"`
	InventoryValue     decimal.Decimal `json:"inventory_value"`
	NetFixedAssetValue decimal.Decimal `json:"net_fixed_asset_value"`
}

// ProjectionRatiosDTO ratios operativos derivados del resumen.
// BreakEvenUnits es null cuando el margen unitario es <= 0 (equilibrio
// inalcanzable, no un cero).
type ProjectionRatiosDTO struct {
	UnitMargin       decimal.Decimal  `json:"unit_margin"`
	BreakEvenUnits   *decimal.Decimal `json:"break_even_units"`
	DailyGoalUnits   decimal.Decimal  `json:"daily_goal_units"`
	DailyGoalRevenue decimal.Decimal  `json:"daily_goal_revenue"`
	DSCR             decimal.Decimal  `json:"dscr"`
}

// ProjectionResponse respuesta de GET /api/plan/projection.
type ProjectionResponse struct {
	Scenario string                 `json:"scenario"` // escenario efectivamente aplicado
	Months   []MonthlyProjectionDTO `json:"months"`

	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	TotalEBITDA          decimal.Decimal `json:"total_ebitda"`
	AverageUnitPrice     decimal.Decimal `json:"average_unit_price"`
	AverageUnitCost      decimal.Decimal `json:"average_unit_cost"`
	MonthlyFixedCostBase decimal.Decimal `json:"monthly_fixed_cost_base"`
	TerminalValue        decimal.Decimal `json:"terminal_value"`
	NetPresentValue      decimal.Decimal `json:"net_present_value"`

	// Heurística del modelo, no una TIR real.
	SimpleReturnPercent decimal.Decimal `json:"simple_return_percent"`

	// null si la caja acumulada nunca llega a 0 dentro del horizonte.
	PaybackPeriod *int `json:"payback_period"`

	Ratios ProjectionRatiosDTO `json:"ratios"`
}
