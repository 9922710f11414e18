package formulas

import (
	"github.com/markcheno/go-talib"
)

// TrailingAverage calculates the simple moving average of the series over
// the given period and returns the most recent value, or nil when the
// series is shorter than the period.
func TrailingAverage(values []float64, period int) *float64 {
	if len(values) < period || period < 1 {
		return nil
	}

	sma := talib.Sma(values, period)

	if len(sma) > 0 && !isNaN(sma[len(sma)-1]) {
		result := sma[len(sma)-1]
		return &result
	}

	return nil
}

// isNaN checks if a float64 is NaN
func isNaN(f float64) bool {
	return f != f
}
