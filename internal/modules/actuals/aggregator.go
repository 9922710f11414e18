package actuals

import (
	"math"

	"github.com/runwayhq/runway/internal/domain"
	"github.com/runwayhq/runway/internal/modules/transactions"
)

// Aggregate groups a user's transactions into calendar-month buckets,
// split by category and income vs expense.
//
// Amounts >= 0 accumulate as income, amounts < 0 as expenses (stored
// positive). Transactions without a category land in "Uncategorized".
// An empty transaction list yields an empty map.
func Aggregate(txs []transactions.Transaction) map[string]domain.MonthBucket {
	buckets := make(map[string]domain.MonthBucket)

	for _, tx := range txs {
		month := domain.MonthOfDate(tx.BookedAt)
		if month == "" {
			continue
		}

		category := tx.Category
		if category == "" {
			category = domain.UncategorizedCategory
		}

		bucket, ok := buckets[month]
		if !ok {
			bucket = domain.MonthBucket{ByCategory: make(map[string]domain.CategoryFlows)}
		}

		flows := bucket.ByCategory[category]
		if tx.Amount >= 0 {
			bucket.Income += tx.Amount
			flows.Income += tx.Amount
		} else {
			expense := math.Abs(tx.Amount)
			bucket.Expenses += expense
			flows.Expenses += expense
		}

		bucket.Net = bucket.Income - bucket.Expenses
		bucket.ByCategory[category] = flows
		buckets[month] = bucket
	}

	return buckets
}

// BalanceThrough returns the running sum of all transactions booked in
// months up to and including the given month key.
func BalanceThrough(txs []transactions.Transaction, month string) float64 {
	var sum float64
	for _, tx := range txs {
		if m := domain.MonthOfDate(tx.BookedAt); m != "" && m <= month {
			sum += tx.Amount
		}
	}
	return sum
}
