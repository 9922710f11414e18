package planned

import "github.com/runwayhq/runway/internal/domain"

// Item represents a planned future income or expense entered by the user,
// distinct from projected category trends. Amount is always positive; the
// kind carries the direction.
type Item struct {
	ID           int64              `json:"id,omitempty"`
	UserID       string             `json:"user_id"`
	Kind         domain.PlannedKind `json:"kind"`
	Description  string             `json:"description"`
	Amount       float64            `json:"amount"`
	ExpectedDate string             `json:"expected_date"` // YYYY-MM-DD
	Recurrence   domain.Recurrence  `json:"recurrence"`
}

// AppliesTo reports whether the item contributes to the given forecast
// month. Monthly items apply to every forecast month; one-off items only
// to the month matching their expected date.
func (i Item) AppliesTo(month string) bool {
	if i.Recurrence == domain.RecurrenceMonthly {
		return true
	}
	return domain.MonthOfDate(i.ExpectedDate) == month
}

// MonthTotals sums planned income and planned expenses applying to the
// given forecast month.
func MonthTotals(items []Item, month string) domain.CategoryFlows {
	var flows domain.CategoryFlows
	for _, item := range items {
		if !item.AppliesTo(month) {
			continue
		}
		switch item.Kind {
		case domain.PlannedIncome:
			flows.Income += item.Amount
		case domain.PlannedExpense:
			flows.Expenses += item.Amount
		}
	}
	return flows
}
