package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// dateLayout renders day-granular bounds as plain dates, so comparisons
// against DATE columns never pass through a timestamp zone cast
const dateLayout = "2006-01-02"

// Repository runs aggregation queries against the member and expense tables.
// Nothing is precomputed; every report is a fresh scan.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new report repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// MonthlyRevenue sums fees and counts paying members per month of payment,
// over live members with a payment date on or after from
func (r *Repository) MonthlyRevenue(ctx context.Context, from time.Time) ([]revenueRow, error) {
	query := `
		SELECT date_trunc('month', payment_date) AS month,
		       COALESCE(SUM(fees_paid), 0),
		       COUNT(*)
		FROM members
		WHERE deleted_at IS NULL AND payment_date >= $1
		GROUP BY month
		ORDER BY month ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer rows.Close()

	var result []revenueRow
	for rows.Next() {
		var row revenueRow
		if err := rows.Scan(&row.Month, &row.Revenue, &row.Members); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// MonthlyExpenses sums expense amounts per month, over expenses dated on or
// after from
func (r *Repository) MonthlyExpenses(ctx context.Context, from time.Time) ([]expenseRow, error) {
	query := `
		SELECT date_trunc('month', date) AS month,
		       COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE date >= $1
		GROUP BY month
		ORDER BY month ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	defer rows.Close()

	var result []expenseRow
	for rows.Next() {
		var row expenseRow
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// CategoryBreakdown sums all-time expenses per category, largest first
func (r *Repository) CategoryBreakdown(ctx context.Context) ([]CategoryTotal, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0) AS total
		FROM expenses
		GROUP BY category
		ORDER BY total DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expense breakdown: %w", err)
	}
	defer rows.Close()

	var result []CategoryTotal
	for rows.Next() {
		var row CategoryTotal
		if err := rows.Scan(&row.Category, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// DashboardStats computes headline member and revenue numbers. today and
// monthStart are day-truncated bounds supplied by the service.
func (r *Repository) DashboardStats(ctx context.Context, today, monthStart time.Time) (*DashboardStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE due_date >= $1),
		       COALESCE(SUM(fees_paid) FILTER (WHERE payment_date >= $2), 0),
		       COALESCE(SUM(fees_paid) FILTER (WHERE due_date < $1), 0)
		FROM members
		WHERE deleted_at IS NULL
	`

	stats := &DashboardStats{}
	err := r.db.QueryRowContext(ctx, query, today.Format(dateLayout), monthStart.Format(dateLayout)).Scan(
		&stats.TotalMembers,
		&stats.ActiveMembers,
		&stats.MonthlyRevenue,
		&stats.PendingFees,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}

	return stats, nil
}
