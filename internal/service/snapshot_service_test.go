package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sksagor/investment-tracker-backend/internal/apperrors"
	"github.com/sksagor/investment-tracker-backend/internal/model"
	"github.com/sksagor/investment-tracker-backend/internal/testutil"
)

// TestSnapshotService_RefreshToday tests on-demand snapshot refresh.
//
// WHY: Snapshots freeze the live summary for charting. A second refresh on
// the same day must replace the stored row, not add another.
func TestSnapshotService_RefreshToday(t *testing.T) {
	t.Run("stores the current summary under today's date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		testutil.NewInvestment().
			WithType(model.TypeFixedDeposit).
			WithPrincipal(1000).
			WithRate(5).
			WithTenureMonths(12).
			Build(t, db)

		snap, err := svc.RefreshToday(context.Background())
		if err != nil {
			t.Fatalf("RefreshToday failed: %v", err)
		}

		if snap.TotalInvested != 1000 {
			t.Errorf("Expected total invested 1000, got %v", snap.TotalInvested)
		}
		if snap.TotalMaturity != 1050 {
			t.Errorf("Expected total maturity 1050, got %v", snap.TotalMaturity)
		}
		if snap.Count != 1 {
			t.Errorf("Expected count 1, got %d", snap.Count)
		}
		if snap.Date.Hour() != 0 || snap.Date.Minute() != 0 {
			t.Errorf("Expected date truncated to midnight, got %v", snap.Date)
		}

		testutil.AssertRowCount(t, db, "portfolio_snapshot", 1)
	})

	t.Run("same-day refresh replaces the stored row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		testutil.NewInvestment().WithPrincipal(1000).Build(t, db)
		if _, err := svc.RefreshToday(context.Background()); err != nil {
			t.Fatalf("First refresh failed: %v", err)
		}

		testutil.NewInvestment().WithPrincipal(2000).Build(t, db)
		snap, err := svc.RefreshToday(context.Background())
		if err != nil {
			t.Fatalf("Second refresh failed: %v", err)
		}

		if snap.TotalInvested != 3000 {
			t.Errorf("Expected refreshed total 3000, got %v", snap.TotalInvested)
		}
		testutil.AssertRowCount(t, db, "portfolio_snapshot", 1)
	})
}

// TestSnapshotService_GetSnapshots tests range reads and bound validation.
func TestSnapshotService_GetSnapshots(t *testing.T) {
	t.Run("returns stored snapshots in range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		testutil.NewInvestment().WithPrincipal(1000).Build(t, db)
		if _, err := svc.RefreshToday(context.Background()); err != nil {
			t.Fatalf("RefreshToday failed: %v", err)
		}

		now := time.Now().UTC()
		snapshots, err := svc.GetSnapshots(now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
		if err != nil {
			t.Fatalf("GetSnapshots failed: %v", err)
		}

		if len(snapshots) != 1 {
			t.Errorf("Expected 1 snapshot, got %d", len(snapshots))
		}
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		start := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		_, err := svc.GetSnapshots(start, end)
		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})
}
