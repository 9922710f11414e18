package forecast

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/runwayhq/runway/internal/domain"
	"github.com/runwayhq/runway/internal/modules/actuals"
	"github.com/runwayhq/runway/internal/modules/budget"
	"github.com/runwayhq/runway/internal/modules/planned"
	"github.com/runwayhq/runway/internal/modules/transactions"
)

// Service runs the full pipeline for one user: load inputs, aggregate
// actuals, fetch or generate the budget, build the rolling forecast and
// derive runway and summary figures. Side-effect-free except for the
// conditional budget save inside the budget service.
type Service struct {
	txRepo    *transactions.Repository
	itemsRepo *planned.Repository
	budgetSvc *budget.Service
	builder   *Builder
	scenarios *ScenarioEngine
	log       zerolog.Logger
}

// NewService creates a new forecast service
func NewService(
	txRepo *transactions.Repository,
	itemsRepo *planned.Repository,
	budgetSvc *budget.Service,
	builder *Builder,
	scenarios *ScenarioEngine,
	log zerolog.Logger,
) *Service {
	return &Service{
		txRepo:    txRepo,
		itemsRepo: itemsRepo,
		budgetSvc: budgetSvc,
		builder:   builder,
		scenarios: scenarios,
		log:       log.With().Str("service", "forecast").Logger(),
	}
}

// Context computes the full numeric context for a user as of the given
// time. Upstream read failures abort the whole computation; there is no
// meaningful partial result without the inputs.
func (s *Service) Context(userID string, horizon domain.Horizon, asOf time.Time) (*Context, error) {
	txs, err := s.txRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	items, err := s.itemsRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load planned items: %w", err)
	}

	b, err := s.budgetSvc.GetOrGenerate(userID, horizon, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve budget: %w", err)
	}

	currentBalance, err := s.txRepo.TotalBalance(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}

	currentMonth := domain.MonthOf(asOf)
	entries := s.builder.Build(BuildInput{
		Transactions:   txs,
		Actuals:        actuals.Aggregate(txs),
		Budget:         b,
		PlannedItems:   items,
		CurrentMonth:   currentMonth,
		CurrentBalance: currentBalance,
	})

	return &Context{
		UserID:          userID,
		AsOfMonth:       currentMonth,
		CurrentBalance:  currentBalance,
		RollingForecast: entries,
		Summary:         Summarize(entries),
		MonthOverMonth:  CompareMonths(entries),
		TrendNet:        TrendNet(entries),
		Runway:          Runway(entries, currentBalance),
	}, nil
}

// Scenarios computes shock scenarios against a freshly built context.
// Passing no shocks runs the default set.
func (s *Service) Scenarios(userID string, horizon domain.Horizon, asOf time.Time, shocks []Shock) ([]ScenarioResult, error) {
	ctx, err := s.Context(userID, horizon, asOf)
	if err != nil {
		return nil, err
	}
	if len(shocks) == 0 {
		shocks = DefaultShocks()
	}
	return s.scenarios.Run(ctx.RollingForecast, ctx.CurrentBalance, shocks), nil
}
