package report

import (
	"time"

	"github.com/dev-rajankit/recozadmin/internal/expense"
)

// MonthlyPoint is one month of the trailing financial series
type MonthlyPoint struct {
	Month       string `json:"month"` // short month name, e.g. "Jun"
	Year        int    `json:"year"`
	Revenue     int64  `json:"revenue"`
	Expenses    int64  `json:"expenses"`
	MembersPaid int    `json:"members_paid"`
}

// MonthlyReport is the trailing six-month revenue/expense/growth series,
// oldest month first, with window totals
type MonthlyReport struct {
	Series        []MonthlyPoint `json:"series"`
	TotalRevenue  int64          `json:"total_revenue"`
	TotalExpenses int64          `json:"total_expenses"`
	NetProfit     int64          `json:"net_profit"`
}

// CategoryTotal is the all-time expense sum for one category
type CategoryTotal struct {
	Category expense.Category `json:"category"`
	Total    int64            `json:"total"`
}

// DashboardStats are the headline numbers on the admin dashboard
type DashboardStats struct {
	TotalMembers   int   `json:"total_members"`
	ActiveMembers  int   `json:"active_members"`
	MonthlyRevenue int64 `json:"monthly_revenue"`
	PendingFees    int64 `json:"pending_fees"`
}

// revenueRow is a per-month revenue aggregate from storage
type revenueRow struct {
	Month   time.Time
	Revenue int64
	Members int
}

// expenseRow is a per-month expense aggregate from storage
type expenseRow struct {
	Month time.Time
	Total int64
}
