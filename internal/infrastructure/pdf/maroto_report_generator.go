// Package pdf implementa la generación del reporte PDF de la proyección
// financiera: la versión imprimible de los paneles de Cash Flow y
// Rentabilidad de la aplicación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Plan de Negocio + dueño  │  Escenario + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: VAN | Valor Terminal | Payback | Retorno | DSCR      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mes | Ventas | EBITDA | Resultado | CF | Caja Acum. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES + Panel operativo (equilibrio, meta diaria)        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appreport "github.com/jhoicas/Planfin-api/internal/application/report"
	"github.com/jhoicas/Planfin-api/internal/domain/entity"
	"github.com/jhoicas/Planfin-api/internal/domain/projection"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ appreport.ProjectionPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.ProjectionPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProjectionPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProjectionPDF(
	_ context.Context,
	owner *entity.User,
	cfg entity.BusinessConfig,
	summary *projection.Summary,
	ratios projection.Ratios,
) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Proyección Financiera Anual", true)
	if owner != nil {
		builder = builder.WithAuthor(owner.Name, true)
	}

	m := maroto.New(builder.Build())

	m.AddRows(headerRow(owner, cfg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(summary, ratios))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range monthRows(summary.Months) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary))
	m.AddRows(line.NewRow(3))
	for _, r := range operationsPanelRows(summary, ratios) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + dueño (izq) y escenario + fecha de emisión (der).
func headerRow(owner *entity.User, cfg entity.BusinessConfig) core.Row {
	name := "—"
	if owner != nil {
		name = owner.Name
	}
	scenario := string(cfg.Scenario)
	if scenario == "" {
		scenario = string(entity.ScenarioBase)
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("PROYECCIÓN FINANCIERA ANUAL", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Plan de: "+name, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Escenario: "+scenario, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// kpiRow: los cinco indicadores de cabecera del panel de rentabilidad.
func kpiRow(summary *projection.Summary, ratios projection.Ratios) core.Row {
	payback := "N/A"
	if summary.PaybackPeriod > 0 {
		payback = "Mes " + strconv.Itoa(summary.PaybackPeriod)
	}

	kpi := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 6,
			}),
		)
	}

	return row.New(16).Add(
		kpi("VAN (estimado)", "$"+formatMoney(summary.NetPresentValue)),
		kpi("Valor Terminal", "$"+formatMoney(summary.TerminalValue)),
		kpi("Payback", payback),
		kpi("Retorno Simple", formatPercent(summary.SimpleReturnPercent)),
		kpi("DSCR", decimal.NewFromFloat(ratios.DSCR).Round(2).String()),
		col.New(2),
	)
}

// tableHeaderRow: cabecera de la tabla mensual.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Mes", 1, align.Center),
		h("Ventas", 2, align.Right),
		h("EBITDA", 2, align.Right),
		h("Resultado Neto", 2, align.Right),
		h("Cash Flow", 2, align.Right),
		h("Caja Acumulada", 3, align.Right),
	)
}

// monthRows: una fila por período proyectado.
func monthRows(months []projection.MonthlyProjection) []core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(months))
	for _, p := range months {
		result = append(result, row.New(7).Add(
			cell("M"+strconv.Itoa(p.Period), 1, align.Center),
			cell("$"+formatMoney(p.Revenue), 2, align.Right),
			cell("$"+formatMoney(p.EBITDA), 2, align.Right),
			cell("$"+formatMoney(p.NetIncome), 2, align.Right),
			cell("$"+formatMoney(p.CashFlow), 2, align.Right),
			cell("$"+formatMoney(p.CumulativeCash), 3, align.Right),
		))
	}
	return result
}

// totalsRow: totales anuales alineados a la derecha.
func totalsRow(summary *projection.Summary) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(14).Add(
		col.New(4),
		col.New(4).Add(
			label("Ventas totales:"),
			label("EBITDA total:"),
		),
		col.New(4).Add(
			value("$"+formatMoney(summary.TotalRevenue)),
			value("$"+formatMoney(summary.TotalEBITDA)),
		),
	)
}

// operationsPanelRows: diagnóstico operativo (equilibrio y metas diarias).
func operationsPanelRows(summary *projection.Summary, ratios projection.Ratios) []core.Row {
	breakEven := "no alcanzable (margen unitario <= 0)"
	dailyGoal := "—"
	if ratios.BreakEvenDefined {
		breakEven = formatMoney(ratios.BreakEvenUnits) + " unid./mes"
		dailyGoal = formatMoney(ratios.DailyGoalUnits) + " unid. ($" + formatMoney(ratios.DailyGoalRevenue) + ")"
	}

	item := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(5).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			})),
			col.New(7).Add(text.New(value, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
		)
	}

	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("PANEL OPERATIVO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		item("Punto de equilibrio:", breakEven),
		item("Meta diaria (22 días hábiles):", dailyGoal),
		item("Costo fijo + nómina base:", "$"+formatMoney(summary.MonthlyFixedCostBase)),
		item("Precio / costo unitario promedio:",
			"$"+formatMoney(summary.AverageUnitPrice)+" / $"+formatMoney(summary.AverageUnitCost)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"El VAN combina la caja acumulada del mes 12 con el 50% del valor terminal y el "+
					"retorno simple no es una TIR: ambos son estimaciones del modelo, no métricas auditables.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney redondea a entero y agrega separador de miles.
func formatMoney(v float64) string {
	s := decimal.NewFromFloat(v).Round(0).String()
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

func formatPercent(v float64) string {
	return decimal.NewFromFloat(v).Round(1).String() + "%"
}
