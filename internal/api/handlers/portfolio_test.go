package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sksagor/investment-tracker-backend/internal/api/handlers"
	"github.com/sksagor/investment-tracker-backend/internal/model"
	"github.com/sksagor/investment-tracker-backend/internal/testutil"
)

// TestPortfolioHandler_PortfolioSummary tests the GET /api/portfolio/summary endpoint.
//
// WHY: The summary is the dashboard's single source of truth. Totals must
// be rounded for display and the breakdown must key on display type.
func TestPortfolioHandler_PortfolioSummary(t *testing.T) {
	t.Run("returns zero summary with empty breakdown for empty store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestSnapshotService(t, db),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/summary", nil)
		w := httptest.NewRecorder()

		handler.PortfolioSummary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp handlers.PortfolioSummaryResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.TotalInvested != 0 || resp.TotalMaturity != 0 || resp.TotalProfit != 0 || resp.Count != 0 {
			t.Errorf("Expected zero summary, got %+v", resp)
		}
		if resp.Breakdown == nil {
			t.Error("Expected non-nil breakdown")
		}
	})

	t.Run("returns rounded totals and breakdown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestSnapshotService(t, db),
		)

		// 1000 at 5% over 1 year: 1050
		testutil.NewInvestment().
			WithType(model.TypeFixedDeposit).
			WithPrincipal(1000).
			WithRate(5).
			WithTenureMonths(12).
			Build(t, db)
		// 2000 at 10% over 2 years: 2400
		testutil.NewInvestment().
			WithType(model.TypeStock).
			WithPrincipal(2000).
			WithRate(10).
			WithTenureMonths(24).
			Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/summary", nil)
		w := httptest.NewRecorder()

		handler.PortfolioSummary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp handlers.PortfolioSummaryResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.TotalInvested != 3000 {
			t.Errorf("Expected total invested 3000, got %v", resp.TotalInvested)
		}
		if resp.TotalMaturity != 3450 {
			t.Errorf("Expected total maturity 3450, got %v", resp.TotalMaturity)
		}
		if resp.TotalProfit != 450 {
			t.Errorf("Expected total profit 450, got %v", resp.TotalProfit)
		}
		if resp.Count != 2 {
			t.Errorf("Expected count 2, got %d", resp.Count)
		}
		if resp.Breakdown["Fixed Deposit"] != 1000 || resp.Breakdown["Stock"] != 2000 {
			t.Errorf("Unexpected breakdown: %v", resp.Breakdown)
		}
	})

	t.Run("rounds fractional totals to two decimals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestSnapshotService(t, db),
		)

		// 1000 at 5% over 5 months: profit 20.8333.., maturity 1020.8333..
		testutil.NewInvestment().
			WithPrincipal(1000).
			WithRate(5).
			WithTenureMonths(5).
			Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/summary", nil)
		w := httptest.NewRecorder()

		handler.PortfolioSummary(w, req)

		var resp handlers.PortfolioSummaryResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.TotalMaturity != 1020.83 {
			t.Errorf("Expected total maturity 1020.83, got %v", resp.TotalMaturity)
		}
		if resp.TotalProfit != 20.83 {
			t.Errorf("Expected total profit 20.83, got %v", resp.TotalProfit)
		}
	})
}

// TestPortfolioHandler_Snapshots tests the GET /api/portfolio/snapshots endpoint.
func TestPortfolioHandler_Snapshots(t *testing.T) {
	t.Run("returns 400 when both bounds are missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestSnapshotService(t, db),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/snapshots", nil)
		w := httptest.NewRecorder()

		handler.Snapshots(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestSnapshotService(t, db),
		)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/snapshots", map[string]string{
			"start_date": "01-06-2024",
		})
		w := httptest.NewRecorder()

		handler.Snapshots(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 when end_date precedes start_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestSnapshotService(t, db),
		)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/snapshots", map[string]string{
			"start_date": "2024-06-30",
			"end_date":   "2024-06-01",
		})
		w := httptest.NewRecorder()

		handler.Snapshots(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns stored snapshots within the range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolioService := testutil.NewTestPortfolioService(t, db)
		snapshotService := testutil.NewTestSnapshotService(t, db)
		handler := handlers.NewPortfolioHandler(portfolioService, snapshotService)

		testutil.NewInvestment().WithPrincipal(1000).Build(t, db)

		refreshReq := httptest.NewRequest(http.MethodPost, "/api/portfolio/snapshots/refresh", nil)
		refreshW := httptest.NewRecorder()
		handler.RefreshSnapshot(refreshW, refreshReq)
		if refreshW.Code != http.StatusOK {
			t.Fatalf("Refresh failed with status %d", refreshW.Code)
		}

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/portfolio/snapshots", map[string]string{
			"start_date": "1970-01-01",
		})
		w := httptest.NewRecorder()

		handler.Snapshots(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp []handlers.SnapshotResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(resp) != 1 {
			t.Fatalf("Expected 1 snapshot, got %d", len(resp))
		}
		if resp[0].TotalInvested != 1000 {
			t.Errorf("Expected total invested 1000, got %v", resp[0].TotalInvested)
		}
	})
}

// TestPortfolioHandler_RefreshSnapshot tests the POST /api/portfolio/snapshots/refresh endpoint.
func TestPortfolioHandler_RefreshSnapshot(t *testing.T) {
	t.Run("stores and returns today's snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestSnapshotService(t, db),
		)

		testutil.NewInvestment().
			WithPrincipal(1000).
			WithRate(5).
			WithTenureMonths(12).
			Build(t, db)

		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/snapshots/refresh", nil)
		w := httptest.NewRecorder()

		handler.RefreshSnapshot(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var resp handlers.SnapshotResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.TotalInvested != 1000 || resp.TotalMaturity != 1050 {
			t.Errorf("Unexpected snapshot values: %+v", resp)
		}

		testutil.AssertRowCount(t, db, "portfolio_snapshot", 1)
	})
}
