package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/domain"
	"github.com/runwayhq/runway/internal/modules/planned"
	"github.com/runwayhq/runway/pkg/formulas"
)

// Projector synthesizes a budget by applying category growth rates
// forward across a horizon and folding in planned items.
type Projector struct {
	log zerolog.Logger
}

// NewProjector creates a new budget projector
func NewProjector(log zerolog.Logger) *Projector {
	return &Projector{
		log: log.With().Str("service", "budget_projector").Logger(),
	}
}

// Project builds a fresh budget for the user as of the given date.
//
// For forecast month index k (0-based), each category projects
// lastObserved * (1 + rate/100)^k, clamped to >= 0. Planned item sums
// for the month land under the synthetic "Planned Items" category,
// added to any projected value already in that slot.
func (p *Projector) Project(
	userID string,
	rates map[string]domain.CategoryGrowthRate,
	horizon domain.Horizon,
	items []planned.Item,
	asOf time.Time,
) *Budget {
	months := domain.HorizonMonths(horizon, asOf)

	data := make(Data, len(months))
	for k, month := range months {
		slot := make(map[string]domain.CategoryFlows, len(rates)+1)

		for category, rate := range rates {
			slot[category] = domain.CategoryFlows{
				Income:   formulas.Grow(rate.LastObserved.Income, rate.IncomeRate, k),
				Expenses: formulas.Grow(rate.LastObserved.Expenses, rate.ExpenseRate, k),
			}
		}

		if totals := planned.MonthTotals(items, month); totals.Income > 0 || totals.Expenses > 0 {
			existing := slot[domain.PlannedItemsCategory]
			existing.Income += totals.Income
			existing.Expenses += totals.Expenses
			slot[domain.PlannedItemsCategory] = existing
		}

		data[month] = slot
	}

	p.log.Debug().
		Str("user_id", userID).
		Str("horizon", string(horizon)).
		Int("months", len(months)).
		Int("categories", len(rates)).
		Msg("Projected budget")

	return &Budget{
		UserID:         userID,
		Version:        uuid.NewString(),
		Horizon:        horizon,
		ForecastMonths: months,
		GrowthRates:    rates,
		Data:           data,
	}
}
