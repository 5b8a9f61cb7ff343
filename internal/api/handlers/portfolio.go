package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/sksagor/investment-tracker-backend/internal/api/response"
	"github.com/sksagor/investment-tracker-backend/internal/apperrors"
	"github.com/sksagor/investment-tracker-backend/internal/model"
	"github.com/sksagor/investment-tracker-backend/internal/service"
)

// PortfolioHandler handles portfolio-level HTTP requests: the live
// summary and the stored snapshot history.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	snapshotService  *service.SnapshotService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependencies.
func NewPortfolioHandler(portfolioService *service.PortfolioService, snapshotService *service.SnapshotService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		snapshotService:  snapshotService,
	}
}

// PortfolioSummaryResponse represents the portfolio summary response.
// Totals and per-type breakdown values are rounded to two decimal places.
type PortfolioSummaryResponse struct {
	TotalInvested float64            `json:"totalInvested"`
	TotalMaturity float64            `json:"totalMaturity"`
	TotalProfit   float64            `json:"totalProfit"`
	Count         int                `json:"count"`
	Breakdown     map[string]float64 `json:"breakdown"`
}

// PortfolioSummary handles GET requests for the live portfolio summary,
// computed from all stored investments on every call.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with PortfolioSummaryResponse
// Error: 500 Internal Server Error if aggregation fails
func (h *PortfolioHandler) PortfolioSummary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.portfolioService.GetSummary()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	breakdown := make(map[string]float64, len(summary.Breakdown))
	for displayType, invested := range summary.Breakdown {
		breakdown[displayType] = round(invested)
	}

	resp := PortfolioSummaryResponse{
		TotalInvested: round(summary.TotalInvested),
		TotalMaturity: round(summary.TotalMaturity),
		TotalProfit:   round(summary.TotalProfit),
		Count:         summary.Count,
		Breakdown:     breakdown,
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// SnapshotResponse represents one stored portfolio snapshot.
type SnapshotResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	TotalInvested float64 `json:"totalInvested"`
	TotalMaturity float64 `json:"totalMaturity"`
	TotalProfit   float64 `json:"totalProfit"`
	Count         int     `json:"count"`
	CalculatedAt  string  `json:"calculatedAt"`
}

// Snapshots handles GET requests for stored portfolio snapshots within a
// date range. Missing start_date defaults to 1970-01-01, missing end_date
// to the current time; at least one bound must be given.
//
// Endpoint: GET /api/portfolio/snapshots?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
// Response: 200 OK with array of SnapshotResponse
// Error: 400 Bad Request if both bounds are missing, a date fails to parse,
// or end_date precedes start_date
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	var startDate, endDate time.Time
	var err error

	if r.URL.Query().Get("start_date") == "" && r.URL.Query().Get("end_date") == "" {
		response.RespondError(w, http.StatusBadRequest, "start_date and/or end_date are required", nil)
		return
	}

	if r.URL.Query().Get("start_date") == "" {
		startDate = time.Unix(0, 0).UTC()
	} else {
		startDate, err = parseDateParam(r.URL.Query().Get("start_date"))
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "failed to parse start_date", err.Error())
			return
		}
	}

	if r.URL.Query().Get("end_date") == "" {
		endDate = time.Now().UTC()
	} else {
		endDate, err = parseDateParam(r.URL.Query().Get("end_date"))
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "failed to parse end_date", err.Error())
			return
		}
	}

	snapshots, err := h.snapshotService.GetSnapshots(startDate, endDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	resp := make([]SnapshotResponse, len(snapshots))
	for i, s := range snapshots {
		resp[i] = toSnapshotResponse(s)
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// RefreshSnapshot handles POST requests to recompute and store today's
// portfolio snapshot, replacing any previous snapshot for the same date.
//
// Endpoint: POST /api/portfolio/snapshots/refresh
// Response: 200 OK with the stored SnapshotResponse
// Error: 500 Internal Server Error if the refresh fails
func (h *PortfolioHandler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotService.RefreshToday(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh portfolio snapshot", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toSnapshotResponse(snapshot))
}

func toSnapshotResponse(s model.PortfolioSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:            s.ID,
		Date:          s.Date.Format("2006-01-02"),
		TotalInvested: round(s.TotalInvested),
		TotalMaturity: round(s.TotalMaturity),
		TotalProfit:   round(s.TotalProfit),
		Count:         s.Count,
		CalculatedAt:  s.CalculatedAt.Format(time.RFC3339),
	}
}

// parseDateParam accepts YYYY-MM-DD with an RFC 3339 fallback so both
// plain dates and full timestamps work as range bounds.
func parseDateParam(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.UTC(), nil
}
