package entity

// Scenario selecciona el multiplicador de volumen aplicado a toda la proyección.
type Scenario string

// Escenarios válidos. Cualquier otro valor se trata como base.
const (
	ScenarioPessimistic Scenario = "pessimistic"
	ScenarioBase        Scenario = "base"
	ScenarioOptimistic  Scenario = "optimistic"
)

// SeasonalityPeriods cantidad de factores de estacionalidad: uno por mes del horizonte.
const SeasonalityPeriods = 12

// CatalogItem un producto o servicio del catálogo. El precio se deriva del
// costo y el margen; el motor trabaja con los promedios de la colección,
// no modela mix por SKU.
type CatalogItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	UnitCost      float64 `json:"unit_cost"`
	MarginPercent float64 `json:"margin_percent"`
}

// UnitPrice precio unitario derivado: costo * (1 + margen/100).
func (c CatalogItem) UnitPrice() float64 {
	return c.UnitCost * (1 + c.MarginPercent/100)
}

// StaffMember un puesto de nómina. BasicPay y AdditionalPay son mensuales;
// EmployerTaxRatePercent es la carga patronal sobre el bruto.
type StaffMember struct {
	ID                     string  `json:"id"`
	Role                   string  `json:"role"`
	BasicPay               float64 `json:"basic_pay"`
	AdditionalPay          float64 `json:"additional_pay"`
	EmployerTaxRatePercent float64 `json:"employer_tax_rate_percent"`
}

// FixedCostLine una línea de gasto fijo mensual (alquiler, SaaS, etc.).
type FixedCostLine struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	MonthlyAmount float64 `json:"monthly_amount"`
}

// FixedAsset un activo depreciable. Depreciación lineal mensual constante
// durante todo el horizonte (sin altas a mitad de año).
type FixedAsset struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AcquisitionValue float64 `json:"acquisition_value"`
	UsefulLifeYears  float64 `json:"useful_life_years"`
}

// LoanTerms condiciones del préstamo: amortización lineal de capital
// (cuotas de capital iguales, no cuota total igual) e interés sobre saldo.
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        float64 `json:"term_months"`
}

// BusinessConfig es el snapshot completo del modelo de negocio que consume el
// motor de proyección. El motor nunca lo muta: cada corrida produce un
// ProjectionSummary nuevo.
type BusinessConfig struct {
	Investment           float64 `json:"investment"`
	DiscountRatePercent  float64 `json:"discount_rate_percent"`  // anual
	InflationRatePercent float64 `json:"inflation_rate_percent"` // mensual

	IncomeTaxRatePercent     float64 `json:"income_tax_rate_percent"`
	SalesTaxRatePercent      float64 `json:"sales_tax_rate_percent"` // IVA, informativo: no entra al motor
	TurnoverTaxRatePercent   float64 `json:"turnover_tax_rate_percent"`
	PaymentGatewayFeePercent float64 `json:"payment_gateway_fee_percent"`

	SafetyStockMonths       float64 `json:"safety_stock_months"`
	CustomerAcquisitionCost float64 `json:"customer_acquisition_cost"`
	CollectionDelayDays     float64 `json:"collection_delay_days"`

	InitialMonthlyUnits       float64 `json:"initial_monthly_units"`
	MonthlySalesGrowthPercent float64 `json:"monthly_sales_growth_percent"`

	Loan LoanTerms `json:"loan"`

	Catalog    []CatalogItem   `json:"catalog"`
	Staff      []StaffMember   `json:"staff"`
	FixedCosts []FixedCostLine `json:"fixed_costs"`
	Assets     []FixedAsset    `json:"assets"`

	// Exactamente 12 multiplicadores positivos, uno por mes (índice = mes - 1).
	SeasonalityFactors []float64 `json:"seasonality_factors"`

	Scenario Scenario `json:"scenario"`
}
