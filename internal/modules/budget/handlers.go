package budget

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/domain"
)

// Handler handles budget HTTP requests
type Handler struct {
	service        *Service
	defaultHorizon domain.Horizon
	log            zerolog.Logger
}

// NewHandler creates a new budget handler
func NewHandler(service *Service, defaultHorizon domain.Horizon, log zerolog.Logger) *Handler {
	return &Handler{
		service:        service,
		defaultHorizon: defaultHorizon,
		log:            log.With().Str("handler", "budget").Logger(),
	}
}

// HandleGet handles GET / - fetch the saved budget, generating if needed
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, horizon, ok := h.params(w, r)
	if !ok {
		return
	}

	b, err := h.service.GetOrGenerate(userID, horizon, time.Now().UTC())
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to get budget")
		http.Error(w, "Failed to retrieve budget", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b)
}

// HandleRegenerate handles POST /regenerate - force a rebuild
func (h *Handler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	userID, horizon, ok := h.params(w, r)
	if !ok {
		return
	}

	b, err := h.service.Regenerate(userID, horizon, time.Now().UTC())
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to regenerate budget")
		http.Error(w, "Failed to regenerate budget", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b)
}

func (h *Handler) params(w http.ResponseWriter, r *http.Request) (string, domain.Horizon, bool) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return "", "", false
	}

	horizon := h.defaultHorizon
	if v := r.URL.Query().Get("horizon"); v != "" {
		horizon = domain.Horizon(v)
		if !horizon.Valid() {
			http.Error(w, "horizon must be 6months or yearend", http.StatusBadRequest)
			return "", "", false
		}
	}

	return userID, horizon, true
}
