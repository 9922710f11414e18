package forecast

// EntryType tags a rolling-forecast month as backed by real transactions
// or by projected figures
type EntryType string

const (
	EntryActual   EntryType = "actual"
	EntryForecast EntryType = "forecast"
)

// Runway methods
const (
	MethodForecastBalance = "forecast_balance"
	MethodAverageBurn     = "average_burn"
)

// Entry is one month in the merged actual+forecast timeline
type Entry struct {
	Month    string    `json:"month"`
	Type     EntryType `json:"type"`
	Income   float64   `json:"income"`
	Expenses float64   `json:"expenses"`
	Net      float64   `json:"net"`
	Balance  float64   `json:"balance"`
}

// RunwayResult reports time to zero cash. Months is nil when no
// depletion is detected under either method.
type RunwayResult struct {
	Months         *int     `json:"months"`
	Method         *string  `json:"method"`
	ZeroCashMonth  *string  `json:"zero_cash_month"`
	AvgMonthlyBurn *float64 `json:"avg_monthly_burn"`
}

// SummaryBlock aggregates one slice of the timeline
type SummaryBlock struct {
	Months   int     `json:"months"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// Summary splits the timeline into actual, forecast and combined totals
type Summary struct {
	Actual   SummaryBlock `json:"actual"`
	Forecast SummaryBlock `json:"forecast"`
	Total    SummaryBlock `json:"total"`
}

// MonthOverMonth compares the two most recent actual months
type MonthOverMonth struct {
	Month     string   `json:"month"`
	PrevMonth string   `json:"prev_month"`
	NetChange float64  `json:"net_change"`
	ChangePct *float64 `json:"change_pct"`
}

// Shock is a parametric scenario: fractional adjustments to average
// forecast revenue and costs (e.g. RevenuePct -0.20 for revenue -20%)
type Shock struct {
	Name       string  `json:"name"`
	RevenuePct float64 `json:"revenue_pct"`
	CostPct    float64 `json:"cost_pct"`
}

// ScenarioResult reports the hypothetical runway under one shock.
// NewRunwayMonths is nil when the shocked burn never depletes cash.
type ScenarioResult struct {
	Name              string `json:"name"`
	Depletes          bool   `json:"depletes"`
	NewRunwayMonths   *int   `json:"new_runway_months"`
	RunwayDeltaMonths *int   `json:"runway_delta_months"`
}

// Context is the full numeric payload handed to the UI and the external
// narrative generator
type Context struct {
	UserID          string          `json:"user_id"`
	AsOfMonth       string          `json:"as_of_month"`
	CurrentBalance  float64         `json:"current_balance"`
	RollingForecast []Entry         `json:"rolling_forecast"`
	Summary         Summary         `json:"summary"`
	MonthOverMonth  *MonthOverMonth `json:"month_over_month"`
	TrendNet        *float64        `json:"trend_net"`
	Runway          RunwayResult    `json:"runway"`
}
