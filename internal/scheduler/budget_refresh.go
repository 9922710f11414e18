package scheduler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/modules/budget"
)

// BudgetRefreshJob regenerates every saved budget from current history
// using its saved horizon. Saved budgets are otherwise reused as-is even
// after large transaction backfills, so this bounds their staleness to
// one refresh interval.
type BudgetRefreshJob struct {
	repo    *budget.Repository
	service *budget.Service
	log     zerolog.Logger
}

// NewBudgetRefreshJob creates a new budget refresh job
func NewBudgetRefreshJob(repo *budget.Repository, service *budget.Service, log zerolog.Logger) *BudgetRefreshJob {
	return &BudgetRefreshJob{
		repo:    repo,
		service: service,
		log:     log.With().Str("job", "budget_refresh").Logger(),
	}
}

// Name returns the job name
func (j *BudgetRefreshJob) Name() string {
	return "budget_refresh"
}

// Run regenerates all saved budgets. A failure for one user does not
// stop the rest.
func (j *BudgetRefreshJob) Run() error {
	userIDs, err := j.repo.UserIDs()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	refreshed := 0
	for _, userID := range userIDs {
		horizon, ok, err := j.repo.SavedHorizon(userID)
		if err != nil || !ok {
			continue
		}
		if _, err := j.service.Regenerate(userID, horizon, now); err != nil {
			j.log.Error().Err(err).Str("user_id", userID).Msg("Failed to refresh budget")
			continue
		}
		refreshed++
	}

	j.log.Info().Int("refreshed", refreshed).Int("total", len(userIDs)).Msg("Budget refresh complete")
	return nil
}
