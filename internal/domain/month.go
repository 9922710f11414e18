package domain

import (
	"sort"
	"time"
)

// monthLayout is the canonical YYYY-MM month key format
const monthLayout = "2006-01"

// MonthOf returns the YYYY-MM key for a point in time
func MonthOf(t time.Time) string {
	return t.Format(monthLayout)
}

// MonthOfDate returns the YYYY-MM key for a YYYY-MM-DD date string.
// Malformed dates shorter than a month key return "" and are skipped
// by callers.
func MonthOfDate(date string) string {
	if len(date) < len(monthLayout) {
		return ""
	}
	return date[:len(monthLayout)]
}

// HorizonMonths resolves a horizon into the ordered list of forecast
// month keys after the as-of month.
//
// "6months" yields the next 6 calendar months. "yearend" yields every
// remaining month of the as-of year, which is empty in December.
func HorizonMonths(h Horizon, asOf time.Time) []string {
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)

	var count int
	switch h {
	case HorizonYearEnd:
		count = int(time.December - asOf.Month())
	default:
		count = 6
	}

	months := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		months = append(months, first.AddDate(0, i, 0).Format(monthLayout))
	}
	return months
}

// SortedMonths returns the map's month keys in ascending order.
// YYYY-MM keys sort correctly as strings.
func SortedMonths[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
