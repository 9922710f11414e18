package budget

import (
	"time"

	"github.com/runwayhq/runway/internal/domain"
)

// Data maps forecast month -> category -> projected flows
type Data map[string]map[string]domain.CategoryFlows

// Budget is the persisted projection for one user. Typed in memory;
// serialized to JSON blobs only at the sqlite boundary.
type Budget struct {
	UserID         string                               `json:"user_id"`
	Version        string                               `json:"version"`
	Horizon        domain.Horizon                       `json:"horizon"`
	ForecastMonths []string                             `json:"forecast_months"`
	GrowthRates    map[string]domain.CategoryGrowthRate `json:"category_growth_rates"`
	Data           Data                                 `json:"budget_data"`
	UpdatedAt      time.Time                            `json:"updated_at"`
}

// MonthFlows sums projected income and expenses across all categories in
// one forecast month's slot.
func (b *Budget) MonthFlows(month string) (domain.CategoryFlows, bool) {
	slot, ok := b.Data[month]
	if !ok {
		return domain.CategoryFlows{}, false
	}
	var total domain.CategoryFlows
	for _, flows := range slot {
		total.Income += flows.Income
		total.Expenses += flows.Expenses
	}
	return total, true
}

// HasPlannedItems reports whether the month's slot already carries the
// synthetic planned-items category.
func (b *Budget) HasPlannedItems(month string) bool {
	slot, ok := b.Data[month]
	if !ok {
		return false
	}
	_, ok = slot[domain.PlannedItemsCategory]
	return ok
}
