package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sksagor/investment-tracker-backend/internal/api/handlers"
	custommiddleware "github.com/sksagor/investment-tracker-backend/internal/api/middleware"
	"github.com/sksagor/investment-tracker-backend/internal/config"
	"github.com/sksagor/investment-tracker-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	exportService *service.ExportService,
	investmentService *service.InvestmentService,
	portfolioService *service.PortfolioService,
	snapshotService *service.SnapshotService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService, exportService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.Get("/export", systemHandler.Export)
			r.Post("/import", systemHandler.Import)
		})

		r.Route("/investment", func(r chi.Router) {
			investmentHandler := handlers.NewInvestmentHandler(investmentService)
			r.Get("/", investmentHandler.Investments)
			r.Post("/", investmentHandler.CreateInvestment)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", investmentHandler.GetInvestment)
				r.Put("/", investmentHandler.UpdateInvestment)
				r.Delete("/", investmentHandler.DeleteInvestment)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService, snapshotService)
			r.Get("/summary", portfolioHandler.PortfolioSummary)
			r.Get("/snapshots", portfolioHandler.Snapshots)
			r.Post("/snapshots/refresh", portfolioHandler.RefreshSnapshot)
		})
	})

	return r
}
