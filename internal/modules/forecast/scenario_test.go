package forecast

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_ShockedBurnMath(t *testing.T) {
	engine := NewScenarioEngine(zerolog.Nop())

	// Forecast: revenue 4000/month, expenses 5000/month, burn 1000/month
	entries := []Entry{
		{Month: "2025-09", Type: EntryForecast, Income: 4000, Expenses: 5000, Net: -1000, Balance: 11000},
		{Month: "2025-10", Type: EntryForecast, Income: 4000, Expenses: 5000, Net: -1000, Balance: 10000},
	}

	results := engine.Run(entries, 12000, []Shock{
		{Name: "revenue_down_25", RevenuePct: -0.25},
	})

	require.Len(t, results, 1)
	result := results[0]
	assert.True(t, result.Depletes)
	// Shocked burn: 5000 - 4000*0.75 = 2000; 12000/2000 = 6 months
	require.NotNil(t, result.NewRunwayMonths)
	assert.Equal(t, 6, *result.NewRunwayMonths)

	// Base runway: 12000/1000 = 12 months (average_burn); delta = -6
	require.NotNil(t, result.RunwayDeltaMonths)
	assert.Equal(t, -6, *result.RunwayDeltaMonths)
}

func TestScenarios_NoDepletionWhenBurnNonPositive(t *testing.T) {
	engine := NewScenarioEngine(zerolog.Nop())

	entries := []Entry{
		{Month: "2025-09", Type: EntryForecast, Income: 6000, Expenses: 5000, Net: 1000, Balance: 13000},
	}

	results := engine.Run(entries, 12000, []Shock{
		{Name: "costs_up_10", CostPct: 0.10},
	})

	require.Len(t, results, 1)
	// Shocked burn: 5500 - 6000 = -500, still cash positive
	assert.False(t, results[0].Depletes)
	assert.Nil(t, results[0].NewRunwayMonths)
	assert.Nil(t, results[0].RunwayDeltaMonths)
}

func TestScenarios_DefaultShockSet(t *testing.T) {
	shocks := DefaultShocks()

	require.Len(t, shocks, 5)
	assert.Equal(t, -0.10, shocks[0].RevenuePct)
	assert.Equal(t, -0.30, shocks[2].RevenuePct)
	assert.Equal(t, 0.20, shocks[4].CostPct)
}

func TestScenarios_NeverMutatesBaseForecast(t *testing.T) {
	engine := NewScenarioEngine(zerolog.Nop())

	entries := []Entry{
		{Month: "2025-09", Type: EntryForecast, Income: 4000, Expenses: 5000, Net: -1000, Balance: 11000},
		{Month: "2025-10", Type: EntryForecast, Income: 4000, Expenses: 5000, Net: -1000, Balance: 10000},
	}
	snapshot := make([]Entry, len(entries))
	copy(snapshot, entries)

	engine.Run(entries, 12000, DefaultShocks())

	assert.Equal(t, snapshot, entries)
}

func TestScenarios_EmptyForecast(t *testing.T) {
	engine := NewScenarioEngine(zerolog.Nop())

	results := engine.Run(nil, 12000, DefaultShocks())

	require.Len(t, results, 5)
	for _, result := range results {
		assert.False(t, result.Depletes)
		assert.Nil(t, result.NewRunwayMonths)
	}
}
