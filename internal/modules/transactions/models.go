package transactions

// Transaction represents one bank transaction owned by a user.
// Immutable once imported; only the category may be corrected later.
// Sign convention: amount >= 0 is income, amount < 0 is an expense.
type Transaction struct {
	ID       int64   `json:"id,omitempty"`
	UserID   string  `json:"user_id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
	BookedAt string  `json:"booked_at"` // YYYY-MM-DD
}
