package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sksagor/investment-tracker-backend/internal/api/request"
	"github.com/sksagor/investment-tracker-backend/internal/api/response"
	"github.com/sksagor/investment-tracker-backend/internal/apperrors"
	"github.com/sksagor/investment-tracker-backend/internal/service"
	"github.com/sksagor/investment-tracker-backend/internal/validation"
)

// InvestmentHandler handles HTTP requests for investment endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the investmentService.
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler with the provided service dependency.
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// InvestmentResponse represents an investment with its derived financial
// values. Monetary fields are rounded to two decimal places for display.
type InvestmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	FDType        string  `json:"fdType,omitempty"`
	DisplayType   string  `json:"displayType"`
	Principal     float64 `json:"principal"`
	AnnualRate    float64 `json:"annualRate"`
	TenureMonths  int     `json:"tenureMonths"`
	StartDate     string  `json:"startDate"`
	MaturityDate  string  `json:"maturityDate"`
	MaturityValue float64 `json:"maturityValue"`
	Profit        float64 `json:"profit"`
	DaysRemaining int     `json:"daysRemaining"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

func toInvestmentResponse(p service.Projection) InvestmentResponse {
	inv := p.Investment
	return InvestmentResponse{
		ID:            inv.ID,
		Name:          inv.Name,
		Description:   inv.Description,
		Type:          string(inv.Type),
		FDType:        inv.FDType,
		DisplayType:   p.DisplayType,
		Principal:     round(inv.Principal),
		AnnualRate:    inv.AnnualRate,
		TenureMonths:  inv.TenureMonths,
		StartDate:     inv.StartDate.Format("2006-01-02"),
		MaturityDate:  p.MaturityDate.Format("2006-01-02"),
		MaturityValue: round(p.MaturityValue),
		Profit:        round(p.Profit),
		DaysRemaining: p.DaysRemaining,
		CreatedAt:     inv.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     inv.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Investments handles GET requests to retrieve all investments.
// Returns investment details including derived maturity value, profit,
// maturity date, and days remaining, ordered by start date.
//
// Endpoint: GET /api/investment
// Response: 200 OK with array of InvestmentResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) Investments(w http.ResponseWriter, _ *http.Request) {
	projections, err := h.investmentService.GetAllInvestments()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	resp := make([]InvestmentResponse, len(projections))
	for i, p := range projections {
		resp[i] = toInvestmentResponse(p)
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// GetInvestment handles GET requests to retrieve a single investment by ID.
//
// Endpoint: GET /api/investment/{uuid}
// Response: 200 OK with InvestmentResponse
// Error: 400 Bad Request if investment ID is invalid (validated by middleware)
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	projection, err := h.investmentService.GetInvestment(investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toInvestmentResponse(projection))
}

// CreateInvestment handles POST requests to create a new investment.
// Validates the request body and stores a new investment record.
//
// Endpoint: POST /api/investment
// Request Body: InvestmentRequest (name, type, principal, annualRate, tenure, startDate)
// Response: 201 Created with InvestmentResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.InvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var validationErr *validation.Error
	if err := validation.ValidateInvestment(req); err != nil {
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	projection, err := h.investmentService.CreateInvestment(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, toInvestmentResponse(projection))
}

// UpdateInvestment handles PUT requests to update an existing investment.
// The request fully replaces the investment's mutable fields.
//
// Endpoint: PUT /api/investment/{uuid}
// Request Body: InvestmentRequest
// Response: 200 OK with updated InvestmentResponse
// Error: 400 Bad Request if investment ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if update fails
func (h *InvestmentHandler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.InvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var validationErr *validation.Error
	if err := validation.ValidateInvestment(req); err != nil {
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	projection, err := h.investmentService.UpdateInvestment(r.Context(), investmentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toInvestmentResponse(projection))
}

// DeleteInvestment handles DELETE requests to remove an investment.
//
// Endpoint: DELETE /api/investment/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if investment ID is invalid (validated by middleware)
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if deletion fails
func (h *InvestmentHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	if err := h.investmentService.DeleteInvestment(r.Context(), investmentID); err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
