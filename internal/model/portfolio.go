package model

import "time"

// PortfolioSummary holds portfolio-level aggregates across all investments.
// Values are accumulated unrounded; rounding happens at the HTTP response
// boundary only.
type PortfolioSummary struct {
	TotalInvested float64            `json:"totalInvested"`
	TotalMaturity float64            `json:"totalMaturity"`
	TotalProfit   float64            `json:"totalProfit"`
	Count         int                `json:"count"`
	Breakdown     map[string]float64 `json:"breakdown"` // display type -> invested subtotal
}

// PortfolioSnapshot is a stored portfolio summary for a single calendar date.
// One row exists per date; refreshes replace the row for that date.
type PortfolioSnapshot struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	TotalInvested float64   `json:"totalInvested"`
	TotalMaturity float64   `json:"totalMaturity"`
	TotalProfit   float64   `json:"totalProfit"`
	Count         int       `json:"count"`
	CalculatedAt  time.Time `json:"calculatedAt"`
}
