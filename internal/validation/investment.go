package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sksagor/investment-tracker-backend/internal/api/request"
	"github.com/sksagor/investment-tracker-backend/internal/finance"
	"github.com/sksagor/investment-tracker-backend/internal/model"
)

// ValidateInvestment validates an investment create or update request.
// Updates fully replace the mutable fields, so the same rules apply to both.
//
// Rules:
//   - name: required
//   - type: required, one of the supported investment types
//   - principal: finite, greater than 0
//   - annualRate: finite, between 0 and 100 inclusive
//   - tenure: exactly one of tenureMonths/tenureYears, strictly positive;
//     years must round to at least one whole month
//   - startDate: required, YYYY-MM-DD format
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateInvestment(req request.InvestmentRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !model.InvestmentType(req.Type).IsValid() {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if math.IsNaN(req.Principal) || math.IsInf(req.Principal, 0) {
		errors["principal"] = "principal must be a finite number"
	} else if req.Principal <= 0 {
		errors["principal"] = "principal must be greater than 0"
	}

	if math.IsNaN(req.AnnualRate) || math.IsInf(req.AnnualRate, 0) {
		errors["annualRate"] = "annualRate must be a finite number"
	} else if req.AnnualRate < 0 || req.AnnualRate > 100 {
		errors["annualRate"] = "annualRate must be between 0 and 100"
	}

	switch {
	case req.TenureMonths != 0 && req.TenureYears != 0:
		errors["tenure"] = "provide either tenureMonths or tenureYears, not both"
	case req.TenureMonths != 0:
		if req.TenureMonths < 0 {
			errors["tenure"] = "tenureMonths must be greater than 0"
		}
	case req.TenureYears != 0:
		if math.IsNaN(req.TenureYears) || math.IsInf(req.TenureYears, 0) || req.TenureYears < 0 {
			errors["tenure"] = "tenureYears must be greater than 0"
		} else if int(math.Round(req.TenureYears*finance.MonthsPerYear)) < 1 {
			// years are normalized to whole months downstream
			errors["tenure"] = "tenureYears must round to at least one month"
		}
	default:
		errors["tenure"] = "tenureMonths or tenureYears is required"
	}

	if strings.TrimSpace(req.StartDate) == "" {
		errors["startDate"] = "startDate is required"
	} else if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		errors["startDate"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
