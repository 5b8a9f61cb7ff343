package validation_test

import (
	"errors"
	"testing"

	"github.com/sksagor/investment-tracker-backend/internal/api/request"
	"github.com/sksagor/investment-tracker-backend/internal/validation"
)

func validRequest() request.InvestmentRequest {
	return request.InvestmentRequest{
		Name:         "Bank FD",
		Description:  "Two year deposit",
		Type:         "Fixed Deposit",
		FDType:       "FSP",
		Principal:    100000,
		AnnualRate:   6,
		TenureMonths: 24,
		StartDate:    "2024-03-15",
	}
}

// TestValidateInvestment tests field-level validation for the shared
// create/update payload.
//
// WHY: Validation is the only barrier between raw JSON and the calculator.
// A payload that slips through with a bad principal or tenure would store
// a row that can never be projected.
func TestValidateInvestment(t *testing.T) {
	t.Run("accepts a valid request with tenure in months", func(t *testing.T) {
		if err := validation.ValidateInvestment(validRequest()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts a valid request with tenure in years", func(t *testing.T) {
		req := validRequest()
		req.TenureMonths = 0
		req.TenureYears = 2.5

		if err := validation.ValidateInvestment(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts tenure years that round up to one month", func(t *testing.T) {
		req := validRequest()
		req.TenureMonths = 0
		req.TenureYears = 0.05 // 0.6 months, rounds to 1

		if err := validation.ValidateInvestment(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts zero interest rate", func(t *testing.T) {
		req := validRequest()
		req.AnnualRate = 0

		if err := validation.ValidateInvestment(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	tests := []struct {
		name   string
		modify func(*request.InvestmentRequest)
		field  string
	}{
		{
			name:   "missing name",
			modify: func(r *request.InvestmentRequest) { r.Name = "  " },
			field:  "name",
		},
		{
			name:   "missing type",
			modify: func(r *request.InvestmentRequest) { r.Type = "" },
			field:  "type",
		},
		{
			name:   "unknown type",
			modify: func(r *request.InvestmentRequest) { r.Type = "Crypto" },
			field:  "type",
		},
		{
			name:   "zero principal",
			modify: func(r *request.InvestmentRequest) { r.Principal = 0 },
			field:  "principal",
		},
		{
			name:   "negative principal",
			modify: func(r *request.InvestmentRequest) { r.Principal = -500 },
			field:  "principal",
		},
		{
			name:   "negative rate",
			modify: func(r *request.InvestmentRequest) { r.AnnualRate = -1 },
			field:  "annualRate",
		},
		{
			name:   "rate above 100",
			modify: func(r *request.InvestmentRequest) { r.AnnualRate = 101 },
			field:  "annualRate",
		},
		{
			name: "both tenure fields set",
			modify: func(r *request.InvestmentRequest) {
				r.TenureMonths = 12
				r.TenureYears = 1
			},
			field: "tenure",
		},
		{
			name: "neither tenure field set",
			modify: func(r *request.InvestmentRequest) {
				r.TenureMonths = 0
				r.TenureYears = 0
			},
			field: "tenure",
		},
		{
			name: "negative tenure months",
			modify: func(r *request.InvestmentRequest) {
				r.TenureMonths = -6
			},
			field: "tenure",
		},
		{
			name: "tenure years rounding below one month",
			modify: func(r *request.InvestmentRequest) {
				r.TenureMonths = 0
				r.TenureYears = 0.01
			},
			field: "tenure",
		},
		{
			name:   "missing start date",
			modify: func(r *request.InvestmentRequest) { r.StartDate = "" },
			field:  "startDate",
		},
		{
			name:   "malformed start date",
			modify: func(r *request.InvestmentRequest) { r.StartDate = "15-03-2024" },
			field:  "startDate",
		},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			err := validation.ValidateInvestment(req)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var validationErr *validation.Error
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, ok := validationErr.Fields[tt.field]; !ok {
				t.Errorf("Expected error on field %q, got fields %v", tt.field, validationErr.Fields)
			}
		})
	}

	t.Run("collects multiple field errors in one pass", func(t *testing.T) {
		req := validRequest()
		req.Name = ""
		req.Principal = -1
		req.StartDate = ""

		err := validation.ValidateInvestment(req)
		if err == nil {
			t.Fatal("Expected validation error, got nil")
		}

		var validationErr *validation.Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected *validation.Error, got %T", err)
		}
		if len(validationErr.Fields) != 3 {
			t.Errorf("Expected 3 field errors, got %d: %v", len(validationErr.Fields), validationErr.Fields)
		}
	})
}
