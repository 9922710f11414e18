package growth

import (
	"github.com/runwayhq/runway/internal/domain"
	"github.com/runwayhq/runway/pkg/formulas"
)

// Rates derives a compound monthly growth rate per category from the full
// available history of month buckets.
//
// For each category, months with any income or expense activity are
// sorted ascending; the rate is computed from the earliest and latest
// such months only:
//
//	rate = ((last / first)^(1/monthsDiff) - 1) * 100
//
// where monthsDiff is the count of observed months minus one. A category
// observed in exactly one month gets rate 0 for both sides; a category
// never observed is omitted. This is endpoints-only compound
// extrapolation, not a regression: a single anomalous first or last month
// moves the whole rate.
func Rates(buckets map[string]domain.MonthBucket) map[string]domain.CategoryGrowthRate {
	months := domain.SortedMonths(buckets)

	// Collect, per category, the ordered months it was active in.
	observed := make(map[string][]domain.CategoryFlows)
	for _, month := range months {
		for category, flows := range buckets[month].ByCategory {
			if flows.Income == 0 && flows.Expenses == 0 {
				continue
			}
			observed[category] = append(observed[category], flows)
		}
	}

	rates := make(map[string]domain.CategoryGrowthRate, len(observed))
	for category, series := range observed {
		first := series[0]
		last := series[len(series)-1]
		monthsDiff := len(series) - 1

		rates[category] = domain.CategoryGrowthRate{
			IncomeRate:   formulas.CompoundMonthlyRate(first.Income, last.Income, monthsDiff),
			ExpenseRate:  formulas.CompoundMonthlyRate(first.Expenses, last.Expenses, monthsDiff),
			LastObserved: last,
		}
	}

	return rates
}
