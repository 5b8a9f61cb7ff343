package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/sksagor/investment-tracker-backend/internal/repository"
	"github.com/sksagor/investment-tracker-backend/internal/service"
)

func NewTestInvestmentService(t *testing.T, db *sql.DB) *service.InvestmentService {
	t.Helper()

	investmentRepo := repository.NewInvestmentRepository(db)

	return service.NewInvestmentService(investmentRepo)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	investmentRepo := repository.NewInvestmentRepository(db)

	return service.NewPortfolioService(investmentRepo)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	portfolioService := NewTestPortfolioService(t, db)

	return service.NewSnapshotService(snapshotRepo, portfolioService)
}

func NewTestExportService(t *testing.T, db *sql.DB, key string) *service.ExportService {
	t.Helper()

	investmentRepo := repository.NewInvestmentRepository(db)

	exportService, err := service.NewExportService(db, investmentRepo, key)
	if err != nil {
		t.Fatalf("Failed to create test export service: %v", err)
	}

	return exportService
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a unique UUID for test entities.
func MakeID() string {
	return uuid.New().String()
}
