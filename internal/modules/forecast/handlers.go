package forecast

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/domain"
)

// Handler handles forecast HTTP requests
type Handler struct {
	service        *Service
	defaultHorizon domain.Horizon
	log            zerolog.Logger
}

// NewHandler creates a new forecast handler
func NewHandler(service *Service, defaultHorizon domain.Horizon, log zerolog.Logger) *Handler {
	return &Handler{
		service:        service,
		defaultHorizon: defaultHorizon,
		log:            log.With().Str("handler", "forecast").Logger(),
	}
}

// HandleGetForecast handles GET / - full numeric context for one user
func (h *Handler) HandleGetForecast(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	horizon := h.defaultHorizon
	if v := r.URL.Query().Get("horizon"); v != "" {
		horizon = domain.Horizon(v)
		if !horizon.Valid() {
			http.Error(w, "horizon must be 6months or yearend", http.StatusBadRequest)
			return
		}
	}

	ctx, err := h.service.Context(userID, horizon, time.Now().UTC())
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to build forecast context")
		http.Error(w, "Failed to build forecast", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ctx)
}

// scenarioRequest is the POST /scenarios body
type scenarioRequest struct {
	UserID  string         `json:"user_id"`
	Horizon domain.Horizon `json:"horizon,omitempty"`
	Shocks  []Shock        `json:"shocks,omitempty"`
}

// HandleScenarios handles POST /scenarios - shock analysis on demand
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	var req scenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	horizon := h.defaultHorizon
	if req.Horizon != "" {
		if !req.Horizon.Valid() {
			http.Error(w, "horizon must be 6months or yearend", http.StatusBadRequest)
			return
		}
		horizon = req.Horizon
	}

	results, err := h.service.Scenarios(req.UserID, horizon, time.Now().UTC(), req.Shocks)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to run scenarios")
		http.Error(w, "Failed to run scenarios", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
