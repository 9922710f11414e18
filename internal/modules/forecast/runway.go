package forecast

import (
	"math"

	"github.com/runwayhq/runway/pkg/formulas"
)

// Runway derives time-to-zero-cash from a rolling forecast.
//
// The primary method scans for the first entry whose balance is <= 0
// ("forecast_balance"). When no entry depletes, it falls back to
// extrapolating the mean net of forecast entries ("average_burn"):
// a negative mean burn divides into the current balance, and the
// zero-cash month resolves to a forecast entry when the result lands
// inside the horizon. A month count landing past the horizon is still
// reported with a nil zero-cash month; nil months is reserved for "no
// depletion detected". A non-negative mean, an empty forecast, or a
// zero burn all report no depletion; the burn sign check is what keeps
// the division safe.
func Runway(entries []Entry, currentBalance float64) RunwayResult {
	for i, entry := range entries {
		if entry.Balance <= 0 {
			months := i + 1
			method := MethodForecastBalance
			month := entry.Month
			return RunwayResult{
				Months:        &months,
				Method:        &method,
				ZeroCashMonth: &month,
			}
		}
	}

	var forecastEntries []Entry
	var nets []float64
	for _, entry := range entries {
		if entry.Type == EntryForecast {
			forecastEntries = append(forecastEntries, entry)
			nets = append(nets, entry.Net)
		}
	}
	if len(nets) == 0 {
		return RunwayResult{}
	}

	avgMonthlyChange := formulas.Mean(nets)
	if avgMonthlyChange >= 0 {
		return RunwayResult{}
	}

	avgMonthlyBurn := math.Abs(avgMonthlyChange)
	months := int(math.Floor(currentBalance / avgMonthlyBurn))
	if months < 1 {
		return RunwayResult{AvgMonthlyBurn: &avgMonthlyBurn}
	}

	method := MethodAverageBurn
	result := RunwayResult{
		Months:         &months,
		Method:         &method,
		AvgMonthlyBurn: &avgMonthlyBurn,
	}
	if months <= len(forecastEntries) {
		month := forecastEntries[months-1].Month
		result.ZeroCashMonth = &month
	}
	return result
}
