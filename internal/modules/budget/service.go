package budget

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/domain"
	"github.com/runwayhq/runway/internal/modules/actuals"
	"github.com/runwayhq/runway/internal/modules/growth"
	"github.com/runwayhq/runway/internal/modules/planned"
	"github.com/runwayhq/runway/internal/modules/transactions"
)

// Service owns the saved-budget lifecycle: reuse when the saved horizon
// matches the request, regenerate otherwise.
type Service struct {
	repo      *Repository
	txRepo    *transactions.Repository
	itemsRepo *planned.Repository
	projector *Projector
	log       zerolog.Logger
}

// NewService creates a new budget service
func NewService(
	repo *Repository,
	txRepo *transactions.Repository,
	itemsRepo *planned.Repository,
	projector *Projector,
	log zerolog.Logger,
) *Service {
	return &Service{
		repo:      repo,
		txRepo:    txRepo,
		itemsRepo: itemsRepo,
		projector: projector,
		log:       log.With().Str("service", "budget").Logger(),
	}
}

// GetOrGenerate returns the user's saved budget when its horizon matches
// the requested one, regenerating and saving otherwise. Stale-but-
// matching budgets are reused as-is; the nightly refresh job bounds how
// stale they can get.
func (s *Service) GetOrGenerate(userID string, horizon domain.Horizon, asOf time.Time) (*Budget, error) {
	saved, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if saved != nil && saved.Horizon == horizon {
		return saved, nil
	}

	return s.Regenerate(userID, horizon, asOf)
}

// Regenerate rebuilds the user's budget from current history and saves it
func (s *Service) Regenerate(userID string, horizon domain.Horizon, asOf time.Time) (*Budget, error) {
	txs, err := s.txRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	items, err := s.itemsRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load planned items: %w", err)
	}

	rates := growth.Rates(actuals.Aggregate(txs))
	b := s.projector.Project(userID, rates, horizon, items, asOf)

	if err := s.repo.Save(b); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID).
		Str("horizon", string(horizon)).
		Str("version", b.Version).
		Msg("Budget regenerated")

	return b, nil
}
