package budget

// Schema defines the budgets table. One row per user; growth rates,
// forecast months and budget data are stored as JSON text.
const Schema = `
CREATE TABLE IF NOT EXISTS budgets (
    user_id TEXT PRIMARY KEY,
    version TEXT NOT NULL,
    horizon TEXT NOT NULL,
    forecast_months TEXT NOT NULL,
    growth_rates TEXT NOT NULL,
    budget_data TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`
