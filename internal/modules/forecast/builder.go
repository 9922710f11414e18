package forecast

import (
	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/domain"
	"github.com/runwayhq/runway/internal/modules/actuals"
	"github.com/runwayhq/runway/internal/modules/budget"
	"github.com/runwayhq/runway/internal/modules/planned"
	"github.com/runwayhq/runway/internal/modules/transactions"
)

// Builder merges actual month buckets with a projected budget into one
// ordered balance timeline. It is the single implementation every
// consumer (runway, scenarios, summary, API) reads from.
type Builder struct {
	log zerolog.Logger
}

// NewBuilder creates a new rolling forecast builder
func NewBuilder(log zerolog.Logger) *Builder {
	return &Builder{
		log: log.With().Str("service", "forecast_builder").Logger(),
	}
}

// BuildInput carries everything the builder needs. CurrentMonth is the
// injected as-of month key; the builder never reads the wall clock.
type BuildInput struct {
	Transactions   []transactions.Transaction
	Actuals        map[string]domain.MonthBucket
	Budget         *budget.Budget // may be nil when nothing is projected
	PlannedItems   []planned.Item
	CurrentMonth   string
	CurrentBalance float64 // used to seed the walk when no actual months exist
}

// Build walks the union of actual and forecast months in ascending order,
// carrying a running balance.
//
// Actual months (bucket exists, month not after CurrentMonth) take their
// flows from the bucket and recompute the balance as the full transaction
// sum through that month, so actual-side balances stay exact even when
// upstream data arrives out of order. Forecast months accumulate
// incrementally from the budget slot. Months with neither data nor
// planned items are omitted entirely, so the emitted list may carry gaps;
// a missing month never means zero activity.
func (b *Builder) Build(in BuildInput) []Entry {
	months := b.unionMonths(in)
	if len(months) == 0 {
		return []Entry{}
	}

	forecastMonths := make(map[string]bool)
	if in.Budget != nil {
		for _, m := range in.Budget.ForecastMonths {
			forecastMonths[m] = true
		}
	}

	// Seed from the transaction sum through the latest actual month, or
	// the known current balance when there is no actual history at all.
	latestActual := ""
	for _, m := range months {
		if _, ok := in.Actuals[m]; ok && m <= in.CurrentMonth {
			latestActual = m
		}
	}

	runningBalance := in.CurrentBalance
	if latestActual != "" {
		runningBalance = actuals.BalanceThrough(in.Transactions, latestActual)
	}

	entries := make([]Entry, 0, len(months))
	for _, month := range months {
		bucket, hasActual := in.Actuals[month]

		switch {
		case hasActual && month <= in.CurrentMonth:
			runningBalance = actuals.BalanceThrough(in.Transactions, month)
			entries = append(entries, Entry{
				Month:    month,
				Type:     EntryActual,
				Income:   bucket.Income,
				Expenses: bucket.Expenses,
				Net:      bucket.Net,
				Balance:  runningBalance,
			})

		case forecastMonths[month]:
			flows, _ := in.Budget.MonthFlows(month)
			// Planned items are folded into the budget at projection
			// time; add them here only when the slot never got them.
			if !in.Budget.HasPlannedItems(month) {
				totals := planned.MonthTotals(in.PlannedItems, month)
				flows.Income += totals.Income
				flows.Expenses += totals.Expenses
			}

			if flows.Income == 0 && flows.Expenses == 0 {
				continue
			}

			net := flows.Income - flows.Expenses
			runningBalance += net
			entries = append(entries, Entry{
				Month:    month,
				Type:     EntryForecast,
				Income:   flows.Income,
				Expenses: flows.Expenses,
				Net:      net,
				Balance:  runningBalance,
			})

		default:
			// Future month with no budget slot and no planned items:
			// omitted rather than emitted as a zero-value entry.
		}
	}

	return entries
}

// unionMonths collects actual and forecast-horizon month keys, ascending
func (b *Builder) unionMonths(in BuildInput) []string {
	seen := make(map[string]bool)
	for m := range in.Actuals {
		seen[m] = true
	}
	if in.Budget != nil {
		for _, m := range in.Budget.ForecastMonths {
			seen[m] = true
		}
	}

	return domain.SortedMonths(seen)
}
