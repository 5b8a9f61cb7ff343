package model

import "time"

// InvestmentType enumerates the supported investment categories.
type InvestmentType string

// Supported investment categories. FixedDeposit entries may additionally
// carry a sub-type (FSP, BSP, or a custom label) in Investment.FDType.
const (
	TypeFixedDeposit InvestmentType = "Fixed Deposit"
	TypeStock        InvestmentType = "Stock"
	TypeMutualFund   InvestmentType = "Mutual Fund"
	TypeBond         InvestmentType = "Bond"
	TypeRealEstate   InvestmentType = "Real Estate"
	TypeGold         InvestmentType = "Gold"
	TypeOther        InvestmentType = "Other"
)

// InvestmentTypes lists all valid investment types in display order.
var InvestmentTypes = []InvestmentType{
	TypeFixedDeposit,
	TypeStock,
	TypeMutualFund,
	TypeBond,
	TypeRealEstate,
	TypeGold,
	TypeOther,
}

// IsValid reports whether t is one of the supported investment types.
func (t InvestmentType) IsValid() bool {
	for _, v := range InvestmentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Investment represents a single investment entry from the database.
// Maturity value and profit are never stored; they are derived on read
// by the finance package.
type Investment struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Type         InvestmentType `json:"type"`
	FDType       string         `json:"fdType,omitempty"` // Fixed Deposit sub-type; empty for other types
	Principal    float64        `json:"principal"`
	AnnualRate   float64        `json:"annualRate"` // percent per year
	TenureMonths int            `json:"tenureMonths"`
	StartDate    time.Time      `json:"startDate"`
	CreatedAt    time.Time      `json:"createdAt,omitempty"`
	UpdatedAt    time.Time      `json:"updatedAt,omitempty"`
}

// DisplayType returns the investment type formatted for presentation.
// Fixed Deposits with a sub-type render as "FD - <sub-type>".
func (i Investment) DisplayType() string {
	if i.Type == TypeFixedDeposit && i.FDType != "" {
		return "FD - " + i.FDType
	}
	return string(i.Type)
}
