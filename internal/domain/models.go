package domain

// Horizon represents the forward window a forecast covers
type Horizon string

const (
	HorizonSixMonths Horizon = "6months"
	HorizonYearEnd   Horizon = "yearend"
)

// Valid reports whether the horizon is a known value
func (h Horizon) Valid() bool {
	return h == HorizonSixMonths || h == HorizonYearEnd
}

// Recurrence represents how often a planned item applies
type Recurrence string

const (
	RecurrenceOneOff  Recurrence = "one-off"
	RecurrenceMonthly Recurrence = "monthly"
)

// PlannedKind distinguishes planned income from planned expenses
type PlannedKind string

const (
	PlannedIncome  PlannedKind = "income"
	PlannedExpense PlannedKind = "expense"
)

// UncategorizedCategory is the bucket for transactions with no category
const UncategorizedCategory = "Uncategorized"

// PlannedItemsCategory is the synthetic budget category that planned
// income and expense items are folded into
const PlannedItemsCategory = "Planned Items"

// CategoryFlows holds the income/expense pair for a single category.
// Expenses are stored positive.
type CategoryFlows struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// MonthBucket aggregates one calendar month of actual transactions
type MonthBucket struct {
	Income     float64                  `json:"income"`
	Expenses   float64                  `json:"expenses"`
	Net        float64                  `json:"net"`
	ByCategory map[string]CategoryFlows `json:"by_category"`
}

// CategoryGrowthRate holds the derived compound monthly growth rates for
// one category, plus the last observed values the projection starts from
type CategoryGrowthRate struct {
	IncomeRate   float64       `json:"income_rate"`
	ExpenseRate  float64       `json:"expense_rate"`
	LastObserved CategoryFlows `json:"last_observed"`
}
