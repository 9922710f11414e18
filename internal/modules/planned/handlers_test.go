package planned

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/runwayhq/runway/internal/domain"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}

func TestHandleList(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.Nop())
	handler := NewHandler(repo, zerolog.Nop())

	repo.Create(&Item{UserID: "u1", Kind: domain.PlannedExpense, Description: "Tax bill", Amount: 4000, ExpectedDate: "2025-10-01", Recurrence: domain.RecurrenceOneOff})
	repo.Create(&Item{UserID: "other", Kind: domain.PlannedIncome, Description: "Grant", Amount: 1, ExpectedDate: "2025-09-01", Recurrence: domain.RecurrenceOneOff})

	req := httptest.NewRequest("GET", "/planned?user_id=u1", nil)
	w := httptest.NewRecorder()
	handler.HandleList(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var items []Item
	err := json.NewDecoder(w.Body).Decode(&items)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tax bill", items[0].Description)
}

func TestHandleList_MissingUserID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	handler := NewHandler(NewRepository(db, zerolog.Nop()), zerolog.Nop())

	req := httptest.NewRequest("GET", "/planned", nil)
	w := httptest.NewRecorder()
	handler.HandleList(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "user_id is required")
}

func TestHandleCreate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.Nop())
	handler := NewHandler(repo, zerolog.Nop())

	body := `{"user_id":"u1","kind":"income","description":"New client retainer","amount":2500,"expected_date":"2025-09-01","recurrence":"monthly"}`
	req := httptest.NewRequest("POST", "/planned", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created Item
	err := json.NewDecoder(w.Body).Decode(&created)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.RecurrenceMonthly, created.Recurrence)
}

func TestHandleCreate_Invalid(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	handler := NewHandler(NewRepository(db, zerolog.Nop()), zerolog.Nop())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{broken`, "Invalid request body"},
		{"missing user", `{"kind":"income","amount":100,"expected_date":"2025-09-01","recurrence":"one-off"}`, "user_id is required"},
		{"bad kind", `{"user_id":"u1","kind":"transfer","amount":100,"expected_date":"2025-09-01","recurrence":"one-off"}`, "kind must be income or expense"},
		{"zero amount", `{"user_id":"u1","kind":"expense","amount":0,"expected_date":"2025-09-01","recurrence":"one-off"}`, "amount must be positive"},
		{"negative amount", `{"user_id":"u1","kind":"expense","amount":-5,"expected_date":"2025-09-01","recurrence":"one-off"}`, "amount must be positive"},
		{"bad date", `{"user_id":"u1","kind":"expense","amount":100,"expected_date":"Sept 1","recurrence":"one-off"}`, "expected_date must be YYYY-MM-DD"},
		{"bad recurrence", `{"user_id":"u1","kind":"expense","amount":100,"expected_date":"2025-09-01","recurrence":"weekly"}`, "recurrence must be one-off or monthly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/planned", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.HandleCreate(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestHandleDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.Nop())
	handler := NewHandler(repo, zerolog.Nop())

	created, err := repo.Create(&Item{UserID: "u1", Kind: domain.PlannedExpense, Description: "Laptop", Amount: 1800, ExpectedDate: "2025-11-01", Recurrence: domain.RecurrenceOneOff})
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Delete("/planned/{id}", handler.HandleDelete)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/planned/%d", created.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	items, err := repo.ListByUser("u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHandleDelete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	handler := NewHandler(NewRepository(db, zerolog.Nop()), zerolog.Nop())

	router := chi.NewRouter()
	router.Delete("/planned/{id}", handler.HandleDelete)

	req := httptest.NewRequest("DELETE", "/planned/424242", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
