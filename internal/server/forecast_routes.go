package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/runwayhq/runway/internal/modules/budget"
	"github.com/runwayhq/runway/internal/modules/forecast"
	"github.com/runwayhq/runway/internal/modules/planned"
	"github.com/runwayhq/runway/internal/modules/transactions"
)

// setupForecastRoutes wires the forecast engine and its data boundaries.
func (s *Server) setupForecastRoutes(r chi.Router) {
	conn := s.db.Conn()

	// Repositories
	txRepo := transactions.NewRepository(conn, s.log)
	plannedRepo := planned.NewRepository(conn, s.log)
	budgetRepo := budget.NewRepository(conn, s.log)

	// Services
	projector := budget.NewProjector(s.log)
	budgetService := budget.NewService(budgetRepo, txRepo, plannedRepo, projector, s.log)
	builder := forecast.NewBuilder(s.log)
	scenarioEngine := forecast.NewScenarioEngine(s.log)
	forecastService := forecast.NewService(
		txRepo,
		plannedRepo,
		budgetService,
		builder,
		scenarioEngine,
		s.log,
	)

	// Handlers
	txHandler := transactions.NewHandler(txRepo, s.log)
	plannedHandler := planned.NewHandler(plannedRepo, s.log)
	budgetHandler := budget.NewHandler(budgetService, s.cfg.DefaultHorizon, s.log)
	forecastHandler := forecast.NewHandler(forecastService, s.cfg.DefaultHorizon, s.log)

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", txHandler.HandleList)
		r.Post("/", txHandler.HandleCreate)
		r.Patch("/{id}/category", txHandler.HandleUpdateCategory)
	})

	r.Route("/planned", func(r chi.Router) {
		r.Get("/", plannedHandler.HandleList)
		r.Post("/", plannedHandler.HandleCreate)
		r.Delete("/{id}", plannedHandler.HandleDelete)
	})

	r.Route("/budget", func(r chi.Router) {
		r.Get("/", budgetHandler.HandleGet)
		r.Post("/regenerate", budgetHandler.HandleRegenerate)
	})

	r.Route("/forecast", func(r chi.Router) {
		r.Get("/", forecastHandler.HandleGetForecast)
		r.Post("/scenarios", forecastHandler.HandleScenarios)
	})
}
