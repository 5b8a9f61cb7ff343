package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sksagor/investment-tracker-backend/internal/apperrors"
	"github.com/sksagor/investment-tracker-backend/internal/model"
)

// InvestmentRepository provides data access methods for the investment table.
// It never computes derived values; maturity and profit belong to the
// finance package.
type InvestmentRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// WithTx returns a new InvestmentRepository scoped to the provided transaction.
func (r *InvestmentRepository) WithTx(tx *sql.Tx) *InvestmentRepository {
	return &InvestmentRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *InvestmentRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const investmentColumns = `id, name, description, type, fd_type, principal, annual_rate, tenure_months, start_date, created_at, updated_at`

// GetAll retrieves all investments ordered by start date.
// Returns an empty slice if the table is empty.
func (r *InvestmentRepository) GetAll() ([]model.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investment
        ORDER BY start_date ASC, created_at ASC
    `

	rows, err := r.getQuerier().Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}

	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	return investments, nil
}

// GetByID retrieves a single investment by its ID.
// Returns apperrors.ErrInvestmentNotFound if no row matches.
func (r *InvestmentRepository) GetByID(id string) (model.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investment
        WHERE id = ?
    `

	row := r.getQuerier().QueryRow(query, id)

	inv, err := scanInvestment(row)
	if err == sql.ErrNoRows {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return model.Investment{}, err
	}

	return inv, nil
}

// Insert stores a new investment. The caller assigns the ID and timestamps.
func (r *InvestmentRepository) Insert(ctx context.Context, inv model.Investment) error {
	query := `
        INSERT INTO investment (id, name, description, type, fd_type, principal, annual_rate, tenure_months, start_date, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.getQuerier().ExecContext(ctx, query,
		inv.ID,
		inv.Name,
		inv.Description,
		string(inv.Type),
		inv.FDType,
		inv.Principal,
		inv.AnnualRate,
		inv.TenureMonths,
		inv.StartDate.Format("2006-01-02"),
		inv.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		inv.UpdatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert investment: %w", err)
	}

	return nil
}

// Update replaces all mutable fields of an existing investment.
// The ID and created_at are immutable. Returns apperrors.ErrInvestmentNotFound
// if no row matches.
func (r *InvestmentRepository) Update(ctx context.Context, inv model.Investment) error {
	query := `
        UPDATE investment
        SET name = ?, description = ?, type = ?, fd_type = ?, principal = ?, annual_rate = ?, tenure_months = ?, start_date = ?, updated_at = ?
        WHERE id = ?
    `

	result, err := r.getQuerier().ExecContext(ctx, query,
		inv.Name,
		inv.Description,
		string(inv.Type),
		inv.FDType,
		inv.Principal,
		inv.AnnualRate,
		inv.TenureMonths,
		inv.StartDate.Format("2006-01-02"),
		inv.UpdatedAt.UTC().Format("2006-01-02 15:04:05"),
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}

// Delete removes an investment by ID.
// Returns apperrors.ErrInvestmentNotFound if no row matches.
func (r *InvestmentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM investment WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}

// DeleteAll removes every investment. Used by the import operation, which
// replaces the store contents inside a transaction.
func (r *InvestmentRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.getQuerier().ExecContext(ctx, `DELETE FROM investment`); err != nil {
		return fmt.Errorf("failed to clear investment table: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInvestment(s scanner) (model.Investment, error) {
	var inv model.Investment
	var typeStr, startDateStr, createdAtStr, updatedAtStr string

	err := s.Scan(
		&inv.ID,
		&inv.Name,
		&inv.Description,
		&typeStr,
		&inv.FDType,
		&inv.Principal,
		&inv.AnnualRate,
		&inv.TenureMonths,
		&startDateStr,
		&createdAtStr,
		&updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Investment{}, err
	}
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to scan investment table results: %w", err)
	}

	inv.Type = model.InvestmentType(typeStr)

	inv.StartDate, err = ParseTime(startDateStr)
	if err != nil || inv.StartDate.IsZero() {
		return model.Investment{}, fmt.Errorf("failed to parse start_date: %w", err)
	}

	inv.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	inv.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return inv, nil
}
