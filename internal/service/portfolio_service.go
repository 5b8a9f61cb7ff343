package service

import (
	"github.com/sksagor/investment-tracker-backend/internal/finance"
	"github.com/sksagor/investment-tracker-backend/internal/model"
	"github.com/sksagor/investment-tracker-backend/internal/repository"
)

// PortfolioService computes portfolio-level aggregates. All math is
// delegated to the finance package; this service only wires the record
// store output into the calculator.
type PortfolioService struct {
	investmentRepo *repository.InvestmentRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependency.
func NewPortfolioService(investmentRepo *repository.InvestmentRepository) *PortfolioService {
	return &PortfolioService{
		investmentRepo: investmentRepo,
	}
}

// GetSummary aggregates all stored investments into portfolio totals and a
// per-type breakdown. An empty store yields an all-zero summary.
func (s *PortfolioService) GetSummary() (model.PortfolioSummary, error) {
	investments, err := s.investmentRepo.GetAll()
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	return finance.Aggregate(investments)
}
