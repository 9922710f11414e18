package transactions

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Repository handles transaction persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new transaction repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "transactions").Logger(),
	}
}

// Create inserts a new transaction
func (r *Repository) Create(tx *Transaction) (*Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, category, booked_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	category := sql.NullString{String: tx.Category, Valid: tx.Category != ""}
	createdAt := time.Now().UTC().Format("2006-01-02 15:04:05")

	result, err := r.db.Exec(query, tx.UserID, tx.Amount, category, tx.BookedAt, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	tx.ID = id
	return tx, nil
}

// ListByUser retrieves all transactions for a user, ordered by date ascending
func (r *Repository) ListByUser(userID string) ([]Transaction, error) {
	query := `
		SELECT id, user_id, amount, category, booked_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY booked_at ASC, id ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		var tx Transaction
		var category sql.NullString

		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &category, &tx.BookedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.Category = category.String
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// UpdateCategory corrects the category of an existing transaction
func (r *Repository) UpdateCategory(id int64, category string) error {
	result, err := r.db.Exec("UPDATE transactions SET category = ? WHERE id = ?", category, id)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %d not found", id)
	}

	return nil
}

// TotalBalance returns the sum of all of a user's transactions
func (r *Repository) TotalBalance(userID string) (float64, error) {
	var total float64
	err := r.db.QueryRow(
		"SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = ?",
		userID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return total, nil
}

// UserIDs returns the distinct users that have transactions
func (r *Repository) UserIDs() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT user_id FROM transactions")
	if err != nil {
		return nil, fmt.Errorf("failed to query user ids: %w", err)
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
