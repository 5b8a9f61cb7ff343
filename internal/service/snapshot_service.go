package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sksagor/investment-tracker-backend/internal/apperrors"
	"github.com/sksagor/investment-tracker-backend/internal/model"
	"github.com/sksagor/investment-tracker-backend/internal/repository"
)

// SnapshotService maintains the portfolio_snapshot table: one stored
// summary per calendar date, refreshed by the scheduler or on demand.
// Reads never recompute history; they return the stored rows.
type SnapshotService struct {
	snapshotRepo     *repository.SnapshotRepository
	portfolioService *PortfolioService
	now              func() time.Time
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(snapshotRepo *repository.SnapshotRepository, portfolioService *PortfolioService) *SnapshotService {
	return &SnapshotService{
		snapshotRepo:     snapshotRepo,
		portfolioService: portfolioService,
		now:              time.Now,
	}
}

// RefreshToday recomputes the portfolio summary and stores it as today's
// snapshot, replacing any previous snapshot for the same date.
func (s *SnapshotService) RefreshToday(ctx context.Context) (model.PortfolioSnapshot, error) {
	summary, err := s.portfolioService.GetSummary()
	if err != nil {
		return model.PortfolioSnapshot{}, err
	}

	now := s.now().UTC()
	snap := model.PortfolioSnapshot{
		ID:            uuid.New().String(),
		Date:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		TotalInvested: summary.TotalInvested,
		TotalMaturity: summary.TotalMaturity,
		TotalProfit:   summary.TotalProfit,
		Count:         summary.Count,
		CalculatedAt:  now,
	}

	if err := s.snapshotRepo.Upsert(ctx, snap); err != nil {
		return model.PortfolioSnapshot{}, err
	}

	return snap, nil
}

// GetSnapshots returns stored snapshots between startDate and endDate
// inclusive, ordered by date.
func (s *SnapshotService) GetSnapshots(startDate, endDate time.Time) ([]model.PortfolioSnapshot, error) {
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	return s.snapshotRepo.GetRange(startDate, endDate)
}
