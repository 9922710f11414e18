package planned

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Repository handles planned item persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new planned item repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "planned").Logger(),
	}
}

// Create inserts a new planned item
func (r *Repository) Create(item *Item) (*Item, error) {
	query := `
		INSERT INTO planned_items (user_id, kind, description, amount, expected_date, recurrence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC().Format("2006-01-02 15:04:05")

	result, err := r.db.Exec(
		query,
		item.UserID,
		string(item.Kind),
		item.Description,
		item.Amount,
		item.ExpectedDate,
		string(item.Recurrence),
		createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert planned item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	item.ID = id
	return item, nil
}

// ListByUser retrieves all planned items for a user, ordered by expected date
func (r *Repository) ListByUser(userID string) ([]Item, error) {
	query := `
		SELECT id, user_id, kind, description, amount, expected_date, recurrence
		FROM planned_items
		WHERE user_id = ?
		ORDER BY expected_date ASC, id ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query planned items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Kind,
			&item.Description,
			&item.Amount,
			&item.ExpectedDate,
			&item.Recurrence,
		); err != nil {
			return nil, fmt.Errorf("failed to scan planned item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Delete removes a planned item
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM planned_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete planned item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("planned item %d not found", id)
	}

	return nil
}
