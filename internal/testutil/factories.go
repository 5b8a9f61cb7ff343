package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/sksagor/investment-tracker-backend/internal/model"
)

// InvestmentBuilder provides a fluent interface for creating test investments.
//
// Example usage:
//
//	// Simple creation with defaults
//	inv := testutil.NewInvestment().Build(t, db)
//
//	// Customized investment
//	inv := testutil.NewInvestment().
//	    WithName("Bank FD").
//	    WithType(model.TypeFixedDeposit).
//	    WithFDType("FSP").
//	    WithPrincipal(100000).
//	    WithRate(6).
//	    WithTenureMonths(24).
//	    Build(t, db)
type InvestmentBuilder struct {
	ID           string
	Name         string
	Description  string
	Type         model.InvestmentType
	FDType       string
	Principal    float64
	AnnualRate   float64
	TenureMonths int
	StartDate    time.Time
}

// NewInvestment creates an InvestmentBuilder with sensible defaults.
func NewInvestment() *InvestmentBuilder {
	return &InvestmentBuilder{
		ID:           MakeID(),
		Name:         "Test Investment",
		Description:  "Test description",
		Type:         model.TypeFixedDeposit,
		FDType:       "",
		Principal:    10000,
		AnnualRate:   5,
		TenureMonths: 12,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *InvestmentBuilder) WithID(id string) *InvestmentBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *InvestmentBuilder) WithName(name string) *InvestmentBuilder {
	b.Name = name
	return b
}

// WithDescription sets a custom description.
func (b *InvestmentBuilder) WithDescription(desc string) *InvestmentBuilder {
	b.Description = desc
	return b
}

// WithType sets the investment type.
func (b *InvestmentBuilder) WithType(invType model.InvestmentType) *InvestmentBuilder {
	b.Type = invType
	return b
}

// WithFDType sets the Fixed Deposit sub-type.
func (b *InvestmentBuilder) WithFDType(fdType string) *InvestmentBuilder {
	b.FDType = fdType
	return b
}

// WithPrincipal sets the invested amount.
func (b *InvestmentBuilder) WithPrincipal(principal float64) *InvestmentBuilder {
	b.Principal = principal
	return b
}

// WithRate sets the annual interest rate in percent.
func (b *InvestmentBuilder) WithRate(rate float64) *InvestmentBuilder {
	b.AnnualRate = rate
	return b
}

// WithTenureMonths sets the tenure in months.
func (b *InvestmentBuilder) WithTenureMonths(months int) *InvestmentBuilder {
	b.TenureMonths = months
	return b
}

// WithStartDate sets the start date.
func (b *InvestmentBuilder) WithStartDate(date time.Time) *InvestmentBuilder {
	b.StartDate = date
	return b
}

// Build creates the investment in the database and returns it.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	now := time.Now().UTC()

	query := `
		INSERT INTO investment (id, name, description, type, fd_type, principal, annual_rate, tenure_months, start_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Name, b.Description, string(b.Type), b.FDType,
		b.Principal, b.AnnualRate, b.TenureMonths,
		b.StartDate.Format("2006-01-02"),
		now.Format("2006-01-02 15:04:05"),
		now.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}

	return model.Investment{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		Type:         b.Type,
		FDType:       b.FDType,
		Principal:    b.Principal,
		AnnualRate:   b.AnnualRate,
		TenureMonths: b.TenureMonths,
		StartDate:    b.StartDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
