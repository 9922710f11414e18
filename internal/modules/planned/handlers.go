package planned

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/domain"
)

// Handler handles planned item HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new planned items handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "planned").Logger(),
	}
}

// HandleList handles GET / - list a user's planned items
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	items, err := h.repo.ListByUser(userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to list planned items")
		http.Error(w, "Failed to retrieve planned items", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []Item{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// HandleCreate handles POST / - create a planned item
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateItem(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.repo.Create(&item)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create planned item")
		http.Error(w, "Failed to create planned item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleDelete handles DELETE /{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid planned item id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to delete planned item")
		http.Error(w, "Failed to delete planned item", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateItem(item *Item) error {
	if item.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if item.Kind != domain.PlannedIncome && item.Kind != domain.PlannedExpense {
		return fmt.Errorf("kind must be income or expense")
	}
	if item.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if _, err := time.Parse("2006-01-02", item.ExpectedDate); err != nil {
		return fmt.Errorf("expected_date must be YYYY-MM-DD")
	}
	if item.Recurrence != domain.RecurrenceOneOff && item.Recurrence != domain.RecurrenceMonthly {
		return fmt.Errorf("recurrence must be one-off or monthly")
	}
	return nil
}
