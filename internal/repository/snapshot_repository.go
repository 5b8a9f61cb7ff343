package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sksagor/investment-tracker-backend/internal/model"
)

// SnapshotRepository provides data access methods for the portfolio_snapshot
// table, which stores one pre-calculated portfolio summary per calendar date.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Upsert inserts the snapshot for its date, replacing any existing row for
// that date. Refreshing the same day twice keeps a single row.
func (r *SnapshotRepository) Upsert(ctx context.Context, snap model.PortfolioSnapshot) error {
	query := `
        INSERT INTO portfolio_snapshot (id, date, total_invested, total_maturity, total_profit, investment_count, calculated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(date) DO UPDATE SET
            total_invested = excluded.total_invested,
            total_maturity = excluded.total_maturity,
            total_profit = excluded.total_profit,
            investment_count = excluded.investment_count,
            calculated_at = excluded.calculated_at
    `

	_, err := r.db.ExecContext(ctx, query,
		snap.ID,
		snap.Date.Format("2006-01-02"),
		snap.TotalInvested,
		snap.TotalMaturity,
		snap.TotalProfit,
		snap.Count,
		snap.CalculatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert portfolio snapshot: %w", err)
	}

	return nil
}

// GetRange retrieves snapshots with dates between startDate and endDate
// inclusive, ordered by date ascending. Returns an empty slice when the
// range holds no snapshots.
func (r *SnapshotRepository) GetRange(startDate, endDate time.Time) ([]model.PortfolioSnapshot, error) {
	query := `
        SELECT id, date, total_invested, total_maturity, total_profit, investment_count, calculated_at
        FROM portfolio_snapshot
        WHERE date >= ? AND date <= ?
        ORDER BY date ASC
    `

	rows, err := r.db.Query(query, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PortfolioSnapshot{}

	for rows.Next() {
		var snap model.PortfolioSnapshot
		var dateStr, calculatedAtStr string

		err := rows.Scan(
			&snap.ID,
			&dateStr,
			&snap.TotalInvested,
			&snap.TotalMaturity,
			&snap.TotalProfit,
			&snap.Count,
			&calculatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_snapshot table results: %w", err)
		}

		snap.Date, err = ParseTime(dateStr)
		if err != nil || snap.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		snap.CalculatedAt, err = ParseTime(calculatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse calculated_at: %w", err)
		}

		snapshots = append(snapshots, snap)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_snapshot table: %w", err)
	}

	return snapshots, nil
}
