// Package finance implements the portfolio calculator: pure derivations of
// maturity values, profit, and portfolio-level aggregates. It performs no
// I/O, holds no state, and never logs; callers handle the returned errors.
package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/sksagor/investment-tracker-backend/internal/model"
)

// ValidationError reports an invalid calculator input, naming the field
// that failed and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// MonthsPerYear converts tenure expressed in months to years before the
// simple-interest formula is applied.
const MonthsPerYear = 12

// Maturity computes the maturity value of an investment using simple
// (non-compounded) interest:
//
//	maturity = principal + principal * annualRate/100 * tenureYears
//
// principal must be finite and strictly positive; annualRate and tenureYears
// must be finite and non-negative. On violation a *ValidationError naming
// the offending field is returned and no computation is performed.
func Maturity(principal, annualRate, tenureYears float64) (float64, error) {
	if !isFinite(principal) {
		return 0, &ValidationError{Field: "principal", Reason: "must be a finite number"}
	}
	if principal <= 0 {
		return 0, &ValidationError{Field: "principal", Reason: "must be greater than 0"}
	}
	if !isFinite(annualRate) {
		return 0, &ValidationError{Field: "annualRate", Reason: "must be a finite number"}
	}
	if annualRate < 0 {
		return 0, &ValidationError{Field: "annualRate", Reason: "must not be negative"}
	}
	if !isFinite(tenureYears) {
		return 0, &ValidationError{Field: "tenure", Reason: "must be a finite number"}
	}
	if tenureYears <= 0 {
		return 0, &ValidationError{Field: "tenure", Reason: "must be greater than 0"}
	}

	return principal + principal*annualRate/100*tenureYears, nil
}

// Profit is the gain over the invested principal. Non-negative for all
// currently supported instruments since rates cannot be negative.
func Profit(principal, maturityValue float64) float64 {
	return maturityValue - principal
}

// TenureYears converts a tenure in whole months to fractional years.
func TenureYears(months int) float64 {
	return float64(months) / MonthsPerYear
}

// MaturityDate is the calendar date on which an investment matures.
func MaturityDate(start time.Time, tenureMonths int) time.Time {
	return start.AddDate(0, tenureMonths, 0)
}

// DaysRemaining counts whole days from now until the maturity date,
// returning 0 once the investment has matured.
func DaysRemaining(now, maturityDate time.Time) int {
	if !maturityDate.After(now) {
		return 0
	}
	return int(maturityDate.Sub(now).Hours() / 24)
}

// Aggregate computes portfolio totals and a per-type breakdown of invested
// principal across the given investments. An empty or nil input yields an
// all-zero summary with an empty breakdown and no error.
//
// Totals are plain sums, so the result is independent of input order and
// identical across repeated calls on the same data. No rounding is applied
// during accumulation.
func Aggregate(investments []model.Investment) (model.PortfolioSummary, error) {
	summary := model.PortfolioSummary{
		Breakdown: make(map[string]float64),
	}

	for _, inv := range investments {
		maturity, err := Maturity(inv.Principal, inv.AnnualRate, TenureYears(inv.TenureMonths))
		if err != nil {
			return model.PortfolioSummary{}, fmt.Errorf("investment %s: %w", inv.ID, err)
		}

		summary.TotalInvested += inv.Principal
		summary.TotalMaturity += maturity
		summary.Breakdown[inv.DisplayType()] += inv.Principal
		summary.Count++
	}

	summary.TotalProfit = summary.TotalMaturity - summary.TotalInvested

	return summary, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
