package budget

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/domain"
)

// Repository handles budget persistence. The nested maps live as JSON
// text in sqlite; everything above this layer sees typed structs.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new budget repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "budget").Logger(),
	}
}

// Get retrieves a user's saved budget, or nil when none exists
func (r *Repository) Get(userID string) (*Budget, error) {
	query := `
		SELECT user_id, version, horizon, forecast_months, growth_rates, budget_data, updated_at
		FROM budgets
		WHERE user_id = ?
	`

	var b Budget
	var months, rates, data, updatedAt string

	err := r.db.QueryRow(query, userID).Scan(
		&b.UserID,
		&b.Version,
		&b.Horizon,
		&months,
		&rates,
		&data,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	if err := json.Unmarshal([]byte(months), &b.ForecastMonths); err != nil {
		return nil, fmt.Errorf("failed to decode forecast months: %w", err)
	}
	if err := json.Unmarshal([]byte(rates), &b.GrowthRates); err != nil {
		return nil, fmt.Errorf("failed to decode growth rates: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &b.Data); err != nil {
		return nil, fmt.Errorf("failed to decode budget data: %w", err)
	}
	b.UpdatedAt, _ = time.Parse("2006-01-02 15:04:05", updatedAt)

	return &b, nil
}

// Save upserts a user's budget row. Concurrent regenerations race here;
// last writer wins, which is accepted because budgets are idempotently
// derivable from the same inputs.
func (r *Repository) Save(b *Budget) error {
	months, err := json.Marshal(b.ForecastMonths)
	if err != nil {
		return fmt.Errorf("failed to encode forecast months: %w", err)
	}
	rates, err := json.Marshal(b.GrowthRates)
	if err != nil {
		return fmt.Errorf("failed to encode growth rates: %w", err)
	}
	data, err := json.Marshal(b.Data)
	if err != nil {
		return fmt.Errorf("failed to encode budget data: %w", err)
	}

	b.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO budgets (user_id, version, horizon, forecast_months, growth_rates, budget_data, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			version = excluded.version,
			horizon = excluded.horizon,
			forecast_months = excluded.forecast_months,
			growth_rates = excluded.growth_rates,
			budget_data = excluded.budget_data,
			updated_at = excluded.updated_at
	`

	_, err = r.db.Exec(
		query,
		b.UserID,
		b.Version,
		string(b.Horizon),
		string(months),
		string(rates),
		string(data),
		b.UpdatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}

	return nil
}

// SavedHorizon returns the horizon of a user's saved budget, if any
func (r *Repository) SavedHorizon(userID string) (domain.Horizon, bool, error) {
	var horizon string
	err := r.db.QueryRow("SELECT horizon FROM budgets WHERE user_id = ?", userID).Scan(&horizon)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get saved horizon: %w", err)
	}
	return domain.Horizon(horizon), true, nil
}

// UserIDs returns every user with a saved budget
func (r *Repository) UserIDs() ([]string, error) {
	rows, err := r.db.Query("SELECT user_id FROM budgets")
	if err != nil {
		return nil, fmt.Errorf("failed to query budget users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
