package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/sksagor/investment-tracker-backend/internal/api/request"
	"github.com/sksagor/investment-tracker-backend/internal/finance"
	"github.com/sksagor/investment-tracker-backend/internal/model"
	"github.com/sksagor/investment-tracker-backend/internal/repository"
)

// InvestmentService handles investment record business logic. It converts
// validated request payloads into strongly-typed Investment rows and
// attaches derived projections on read.
type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
	now            func() time.Time
}

// NewInvestmentService creates a new InvestmentService with the provided repository dependency.
func NewInvestmentService(investmentRepo *repository.InvestmentRepository) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		now:            time.Now,
	}
}

// Projection pairs a stored investment with its derived financial values.
// Values are unrounded; the HTTP layer rounds for display.
type Projection struct {
	Investment    model.Investment
	MaturityValue float64
	Profit        float64
	MaturityDate  time.Time
	DaysRemaining int
	DisplayType   string
}

// CreateInvestment stores a new investment built from a validated request
// and returns its projection with the assigned ID.
func (s *InvestmentService) CreateInvestment(ctx context.Context, req request.InvestmentRequest) (Projection, error) {
	inv, err := s.fromRequest(req)
	if err != nil {
		return Projection{}, err
	}

	now := s.now().UTC()
	inv.ID = uuid.New().String()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	// Derive before persisting: a row the calculator rejects must never
	// reach the store, or every subsequent read would fail on it.
	projection, err := s.project(inv)
	if err != nil {
		return Projection{}, err
	}

	if err := s.investmentRepo.Insert(ctx, inv); err != nil {
		return Projection{}, err
	}

	return projection, nil
}

// UpdateInvestment replaces all mutable fields of an existing investment.
// The ID and creation timestamp are preserved.
func (s *InvestmentService) UpdateInvestment(ctx context.Context, id string, req request.InvestmentRequest) (Projection, error) {
	existing, err := s.investmentRepo.GetByID(id)
	if err != nil {
		return Projection{}, err
	}

	inv, err := s.fromRequest(req)
	if err != nil {
		return Projection{}, err
	}

	inv.ID = existing.ID
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = s.now().UTC()

	projection, err := s.project(inv)
	if err != nil {
		return Projection{}, err
	}

	if err := s.investmentRepo.Update(ctx, inv); err != nil {
		return Projection{}, err
	}

	return projection, nil
}

// DeleteInvestment removes an investment by ID.
func (s *InvestmentService) DeleteInvestment(ctx context.Context, id string) error {
	return s.investmentRepo.Delete(ctx, id)
}

// GetInvestment retrieves a single investment with its derived projection.
func (s *InvestmentService) GetInvestment(id string) (Projection, error) {
	inv, err := s.investmentRepo.GetByID(id)
	if err != nil {
		return Projection{}, err
	}
	return s.project(inv)
}

// GetAllInvestments retrieves all investments with their derived projections,
// ordered by start date.
func (s *InvestmentService) GetAllInvestments() ([]Projection, error) {
	investments, err := s.investmentRepo.GetAll()
	if err != nil {
		return nil, err
	}

	projections := make([]Projection, len(investments))
	for i, inv := range investments {
		p, err := s.project(inv)
		if err != nil {
			return nil, err
		}
		projections[i] = p
	}

	return projections, nil
}

// project derives maturity value, profit, and schedule data for a stored row.
func (s *InvestmentService) project(inv model.Investment) (Projection, error) {
	maturity, err := finance.Maturity(inv.Principal, inv.AnnualRate, finance.TenureYears(inv.TenureMonths))
	if err != nil {
		return Projection{}, err
	}

	maturityDate := finance.MaturityDate(inv.StartDate, inv.TenureMonths)

	return Projection{
		Investment:    inv,
		MaturityValue: maturity,
		Profit:        finance.Profit(inv.Principal, maturity),
		MaturityDate:  maturityDate,
		DaysRemaining: finance.DaysRemaining(s.now().UTC(), maturityDate),
		DisplayType:   inv.DisplayType(),
	}, nil
}

// fromRequest converts a validated request into a typed Investment.
// Tenure given in years is normalised to whole months, and the Fixed
// Deposit sub-type is cleared for all other investment types.
func (s *InvestmentService) fromRequest(req request.InvestmentRequest) (model.Investment, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return model.Investment{}, err
	}

	tenureMonths := req.TenureMonths
	if tenureMonths == 0 {
		tenureMonths = int(math.Round(req.TenureYears * finance.MonthsPerYear))
	}

	invType := model.InvestmentType(req.Type)

	fdType := ""
	if invType == model.TypeFixedDeposit {
		fdType = req.FDType
	}

	return model.Investment{
		Name:         req.Name,
		Description:  req.Description,
		Type:         invType,
		FDType:       fdType,
		Principal:    req.Principal,
		AnnualRate:   req.AnnualRate,
		TenureMonths: tenureMonths,
		StartDate:    startDate,
	}, nil
}
