package forecast

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/runwayhq/runway/internal/domain"
	"github.com/runwayhq/runway/internal/modules/budget"
	"github.com/runwayhq/runway/internal/modules/planned"
	"github.com/runwayhq/runway/internal/modules/transactions"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	for _, schema := range []string{transactions.Schema, planned.Schema, budget.Schema} {
		_, err = db.Exec(schema)
		require.NoError(t, err)
	}
	return db
}

func setupService(t *testing.T, db *sql.DB) (*Service, *transactions.Repository, *planned.Repository) {
	t.Helper()

	log := zerolog.Nop()
	txRepo := transactions.NewRepository(db, log)
	plannedRepo := planned.NewRepository(db, log)
	budgetRepo := budget.NewRepository(db, log)
	budgetService := budget.NewService(budgetRepo, txRepo, plannedRepo, budget.NewProjector(log), log)

	service := NewService(txRepo, plannedRepo, budgetService, NewBuilder(log), NewScenarioEngine(log), log)
	return service, txRepo, plannedRepo
}

func seedMonth(t *testing.T, txRepo *transactions.Repository, userID, month string, income, expenses float64) {
	t.Helper()
	if income != 0 {
		_, err := txRepo.Create(&transactions.Transaction{UserID: userID, Amount: income, Category: "Sales", BookedAt: month + "-05"})
		require.NoError(t, err)
	}
	if expenses != 0 {
		_, err := txRepo.Create(&transactions.Transaction{UserID: userID, Amount: -expenses, Category: "Ops", BookedAt: month + "-20"})
		require.NoError(t, err)
	}
}

func TestContext_FlatExtrapolationFromSteadyHistory(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	service, txRepo, _ := setupService(t, db)

	// Two steady months: all category rates are 0, so forecast months
	// repeat the last observed values.
	seedMonth(t, txRepo, "u1", "2025-06", 11000, 2500)
	seedMonth(t, txRepo, "u1", "2025-07", 11000, 2500)

	asOf := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	ctx, err := service.Context("u1", domain.HorizonSixMonths, asOf)
	require.NoError(t, err)

	require.Len(t, ctx.RollingForecast, 8) // 2 actual + 6 forecast
	assert.Equal(t, 17000.0, ctx.CurrentBalance)

	for _, entry := range ctx.RollingForecast[2:] {
		assert.Equal(t, EntryForecast, entry.Type)
		assert.InDelta(t, 8500.0, entry.Net, 1e-9, entry.Month)
	}

	// Cash keeps growing: no depletion under either method
	assert.Nil(t, ctx.Runway.Months)
}

func TestContext_AverageBurnRunway(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	service, txRepo, _ := setupService(t, db)

	// Revenue halves each month (4000 -> 2000 -> 1000, a -50% compound
	// rate) against a steady 800 cost base. The first forecast month
	// repeats the last observed values before compounding kicks in, and
	// the accumulated buffer of 5400 outlasts the six projected months,
	// so runway falls back to the average-burn extrapolation.
	for _, tx := range []transactions.Transaction{
		{UserID: "u1", Amount: 4000, Category: "Consulting", BookedAt: "2025-05-06"},
		{UserID: "u1", Amount: 2000, Category: "Consulting", BookedAt: "2025-06-06"},
		{UserID: "u1", Amount: -800, Category: "Ops", BookedAt: "2025-06-20"},
		{UserID: "u1", Amount: 1000, Category: "Consulting", BookedAt: "2025-07-06"},
		{UserID: "u1", Amount: -800, Category: "Ops", BookedAt: "2025-07-20"},
	} {
		_, err := txRepo.Create(&tx)
		require.NoError(t, err)
	}

	asOf := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	ctx, err := service.Context("u1", domain.HorizonSixMonths, asOf)
	require.NoError(t, err)

	assert.Equal(t, 5400.0, ctx.CurrentBalance)

	require.NotNil(t, ctx.Runway.Method)
	assert.Equal(t, MethodAverageBurn, *ctx.Runway.Method)
	require.NotNil(t, ctx.Runway.AvgMonthlyBurn)
	assert.InDelta(t, 471.875, *ctx.Runway.AvgMonthlyBurn, 1e-6)
	require.NotNil(t, ctx.Runway.Months)
	assert.Equal(t, 11, *ctx.Runway.Months) // floor(5400 / 471.875)
	assert.Nil(t, ctx.Runway.ZeroCashMonth) // depletion lands past the horizon
}

func TestContext_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	service, txRepo, plannedRepo := setupService(t, db)

	seedMonth(t, txRepo, "u1", "2025-06", 8000, 6000)
	seedMonth(t, txRepo, "u1", "2025-07", 8800, 6600)
	_, err := plannedRepo.Create(&planned.Item{
		UserID: "u1", Kind: domain.PlannedExpense, Description: "Insurance",
		Amount: 900, ExpectedDate: "2025-10-01", Recurrence: domain.RecurrenceOneOff,
	})
	require.NoError(t, err)

	asOf := time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC)

	first, err := service.Context("u1", domain.HorizonSixMonths, asOf)
	require.NoError(t, err)
	second, err := service.Context("u1", domain.HorizonSixMonths, asOf)
	require.NoError(t, err)

	assert.Equal(t, first.RollingForecast, second.RollingForecast)
	assert.Equal(t, first.Runway, second.Runway)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestContext_YearEndInDecemberHasOnlyActuals(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	service, txRepo, _ := setupService(t, db)
	seedMonth(t, txRepo, "u1", "2025-11", 5000, 4000)

	asOf := time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC)
	ctx, err := service.Context("u1", domain.HorizonYearEnd, asOf)
	require.NoError(t, err)

	require.Len(t, ctx.RollingForecast, 1)
	assert.Equal(t, EntryActual, ctx.RollingForecast[0].Type)
	assert.Equal(t, 0, ctx.Summary.Forecast.Months)
}

func TestContext_BrandNewUserIsEmptyNotError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	service, _, _ := setupService(t, db)

	asOf := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	ctx, err := service.Context("nobody", domain.HorizonSixMonths, asOf)
	require.NoError(t, err)

	assert.Equal(t, 0.0, ctx.CurrentBalance)
	assert.Empty(t, ctx.RollingForecast)
	assert.Nil(t, ctx.Runway.Months)
}

func TestScenariosService_DefaultsApplied(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	service, txRepo, _ := setupService(t, db)
	seedMonth(t, txRepo, "u1", "2025-06", 8000, 6000)
	seedMonth(t, txRepo, "u1", "2025-07", 8000, 6000)

	asOf := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	results, err := service.Scenarios("u1", domain.HorizonSixMonths, asOf, nil)
	require.NoError(t, err)

	require.Len(t, results, 5)
	assert.Equal(t, "revenue_down_10", results[0].Name)
}
