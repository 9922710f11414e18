package forecast

import (
	"math"

	"github.com/runwayhq/runway/pkg/formulas"
)

// trendWindow is the period of the trailing net moving average
const trendWindow = 3

// Summarize splits the timeline into actual, forecast and combined blocks
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, entry := range entries {
		block := &s.Forecast
		if entry.Type == EntryActual {
			block = &s.Actual
		}
		block.Months++
		block.Income += entry.Income
		block.Expenses += entry.Expenses
		block.Net += entry.Net
	}

	s.Total = SummaryBlock{
		Months:   s.Actual.Months + s.Forecast.Months,
		Income:   s.Actual.Income + s.Forecast.Income,
		Expenses: s.Actual.Expenses + s.Forecast.Expenses,
		Net:      s.Actual.Net + s.Forecast.Net,
	}
	return s
}

// CompareMonths compares the two most recent actual months. Returns nil
// with fewer than two actual months; the percent change is nil when the
// prior month's net was zero.
func CompareMonths(entries []Entry) *MonthOverMonth {
	var actual []Entry
	for _, entry := range entries {
		if entry.Type == EntryActual {
			actual = append(actual, entry)
		}
	}
	if len(actual) < 2 {
		return nil
	}

	last := actual[len(actual)-1]
	prev := actual[len(actual)-2]

	mom := &MonthOverMonth{
		Month:     last.Month,
		PrevMonth: prev.Month,
		NetChange: last.Net - prev.Net,
	}
	if prev.Net != 0 {
		pct := mom.NetChange / math.Abs(prev.Net) * 100
		mom.ChangePct = &pct
	}
	return mom
}

// TrendNet is the trailing moving average of actual monthly nets, used
// as trend context by the narrative layer. Nil with fewer months than
// the window.
func TrendNet(entries []Entry) *float64 {
	var nets []float64
	for _, entry := range entries {
		if entry.Type == EntryActual {
			nets = append(nets, entry.Net)
		}
	}
	return formulas.TrailingAverage(nets, trendWindow)
}
