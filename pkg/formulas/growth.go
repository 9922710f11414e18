package formulas

import "math"

// Finite clamps NaN and infinities to 0. All projection math routes
// through this so a degenerate input never leaks into stored budgets.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NonNegative clamps negative values to 0
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// CompoundMonthlyRate derives the percent-per-month compound growth rate
// implied by moving from first to last over monthsDiff periods.
//
// Formula:
//   rate = ((last / first)^(1/monthsDiff) - 1) * 100
//
// Returns 0 when monthsDiff < 1 or first <= 0, and clamps non-finite
// results (division by zero, negative-base fractional exponents) to 0.
func CompoundMonthlyRate(first, last float64, monthsDiff int) float64 {
	if monthsDiff < 1 || first <= 0 {
		return 0
	}
	rate := (math.Pow(last/first, 1.0/float64(monthsDiff)) - 1) * 100
	return Finite(rate)
}

// Grow compounds base forward by a percent-per-month rate over the given
// number of periods. Result is clamped finite and non-negative: projected
// cash flows never go below zero.
func Grow(base, ratePct float64, periods int) float64 {
	v := base * math.Pow(1+ratePct/100, float64(periods))
	return NonNegative(Finite(v))
}
