package planned

// Schema defines the planned_items table
const Schema = `
CREATE TABLE IF NOT EXISTS planned_items (
    id INTEGER PRIMARY KEY,
    user_id TEXT NOT NULL,
    kind TEXT NOT NULL,
    description TEXT NOT NULL,
    amount REAL NOT NULL,
    expected_date TEXT NOT NULL,
    recurrence TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_planned_items_user ON planned_items(user_id);
`
