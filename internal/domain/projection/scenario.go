package projection

import "github.com/jhoicas/Planfin-api/internal/domain/entity"

// Multiplicadores de volumen por escenario. Escalan uniformemente las unidades
// realizadas de cada período; no alteran crecimiento, precios ni costos.
const (
	optimisticMultiplier  = 1.25
	pessimisticMultiplier = 0.75
)

// ScenarioMultiplier resuelve el escenario a su multiplicador de volumen.
// Un selector no reconocido se trata como base (1.0).
func ScenarioMultiplier(s entity.Scenario) float64 {
	switch s {
	case entity.ScenarioOptimistic:
		return optimisticMultiplier
	case entity.ScenarioPessimistic:
		return pessimisticMultiplier
	default:
		return 1
	}
}
