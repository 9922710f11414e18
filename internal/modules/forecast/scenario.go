package forecast

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/pkg/formulas"
)

// DefaultShocks is the standard scenario set: revenue down 10/20/30%,
// costs up 10/20%.
func DefaultShocks() []Shock {
	return []Shock{
		{Name: "revenue_down_10", RevenuePct: -0.10},
		{Name: "revenue_down_20", RevenuePct: -0.20},
		{Name: "revenue_down_30", RevenuePct: -0.30},
		{Name: "costs_up_10", CostPct: 0.10},
		{Name: "costs_up_20", CostPct: 0.20},
	}
}

// ScenarioEngine re-evaluates runway under parametric shocks to the
// average forecast burn rate. It only ever reads the forecast: the base
// rolling forecast is never mutated.
type ScenarioEngine struct {
	log zerolog.Logger
}

// NewScenarioEngine creates a new scenario engine
func NewScenarioEngine(log zerolog.Logger) *ScenarioEngine {
	return &ScenarioEngine{
		log: log.With().Str("service", "scenarios").Logger(),
	}
}

// Run computes hypothetical runway deltas for each shock.
//
// For each shock: shockedBurn = avgExpenses*(1+costPct) -
// avgRevenue*(1+revenuePct). A positive shocked burn divides into the
// current balance for the new runway; otherwise the scenario reports no
// depletion. Deltas are relative to the unshocked runway and omitted
// when either side is undefined.
func (e *ScenarioEngine) Run(entries []Entry, currentBalance float64, shocks []Shock) []ScenarioResult {
	var revenues, expenses []float64
	for _, entry := range entries {
		if entry.Type == EntryForecast {
			revenues = append(revenues, entry.Income)
			expenses = append(expenses, entry.Expenses)
		}
	}

	avgRevenue := formulas.Mean(revenues)
	avgExpenses := formulas.Mean(expenses)
	baseRunway := Runway(entries, currentBalance)

	results := make([]ScenarioResult, 0, len(shocks))
	for _, shock := range shocks {
		result := ScenarioResult{Name: shock.Name}

		shockedBurn := avgExpenses*(1+shock.CostPct) - avgRevenue*(1+shock.RevenuePct)
		if len(revenues) > 0 && shockedBurn > 0 {
			months := int(math.Floor(currentBalance / shockedBurn))
			result.Depletes = true
			result.NewRunwayMonths = &months

			if baseRunway.Months != nil {
				delta := months - *baseRunway.Months
				result.RunwayDeltaMonths = &delta
			}
		}

		results = append(results, result)
	}

	return results
}
