package report

import (
	"context"
	"time"
)

// windowMonths is the length of the trailing series, current month included
const windowMonths = 6

// Store is the aggregation interface the service depends on
type Store interface {
	MonthlyRevenue(ctx context.Context, from time.Time) ([]revenueRow, error)
	MonthlyExpenses(ctx context.Context, from time.Time) ([]expenseRow, error)
	CategoryBreakdown(ctx context.Context) ([]CategoryTotal, error)
	DashboardStats(ctx context.Context, today, monthStart time.Time) (*DashboardStats, error)
}

// Service assembles financial reports from raw aggregates
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a new report service with store dependency injected
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Monthly builds the trailing six-month revenue/expense/growth series.
// Months without activity appear with zero values so the series always has
// exactly six points.
func (s *Service) Monthly(ctx context.Context) (*MonthlyReport, error) {
	now := s.now()
	windowStart := monthStart(now).AddDate(0, -(windowMonths - 1), 0)

	revenue, err := s.store.MonthlyRevenue(ctx, windowStart)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.MonthlyExpenses(ctx, windowStart)
	if err != nil {
		return nil, err
	}

	revenueByMonth := make(map[string]revenueRow, len(revenue))
	for _, row := range revenue {
		revenueByMonth[monthKey(row.Month)] = row
	}
	expensesByMonth := make(map[string]int64, len(expenses))
	for _, row := range expenses {
		expensesByMonth[monthKey(row.Month)] = row.Total
	}

	report := &MonthlyReport{Series: make([]MonthlyPoint, 0, windowMonths)}
	for i := 0; i < windowMonths; i++ {
		month := windowStart.AddDate(0, i, 0)
		key := monthKey(month)

		point := MonthlyPoint{
			Month:    month.Format("Jan"),
			Year:     month.Year(),
			Expenses: expensesByMonth[key],
		}
		if row, ok := revenueByMonth[key]; ok {
			point.Revenue = row.Revenue
			point.MembersPaid = row.Members
		}

		report.Series = append(report.Series, point)
		report.TotalRevenue += point.Revenue
		report.TotalExpenses += point.Expenses
	}
	report.NetProfit = report.TotalRevenue - report.TotalExpenses

	return report, nil
}

// Breakdown returns the all-time expense total per category
func (s *Service) Breakdown(ctx context.Context) ([]CategoryTotal, error) {
	totals, err := s.store.CategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		totals = []CategoryTotal{}
	}
	return totals, nil
}

// Dashboard computes the headline stats for the admin dashboard
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.store.DashboardStats(ctx, today, monthStart(now))
}

// monthStart maps t to the first day of its calendar month, midnight UTC, so
// window bounds line up with the UTC month timestamps the aggregates return
// regardless of the server zone.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
