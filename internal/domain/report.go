package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RevenueReportRow struct {
	SaleID        string          `json:"sale_id"`
	SaleDate      time.Time       `json:"sale_date"`
	ClientName    string          `json:"client_name"`
	ServiceName   string          `json:"service_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Notes         *string         `json:"notes,omitempty"`
}

type RevenueReport struct {
	Period     Period             `json:"period"`
	Rows       []RevenueReportRow `json:"rows"`
	SalesCount int                `json:"sales_count"`
	Total      decimal.Decimal    `json:"total"`
}

type ServicesReport struct {
	Period     Period                `json:"period"`
	Rows       []ServiceBreakdownRow `json:"rows"`
	GrandTotal decimal.Decimal       `json:"grand_total"`
	TotalQty   int                   `json:"total_qty"`
}

// DashboardSummary resume o mês corrente para a tela inicial
type DashboardSummary struct {
	MonthlyRevenue        decimal.Decimal `json:"monthly_revenue"`
	TotalClients          int             `json:"total_clients"`
	InactiveClients       int             `json:"inactive_clients"`
	InactiveDaysThreshold int             `json:"inactive_days_threshold"`
	TodayAppointments     int             `json:"today_appointments"`
	GoalTarget            decimal.Decimal `json:"goal_target"`
	GoalCurrent           decimal.Decimal `json:"goal_current"`
	GoalProgressPct       float64         `json:"goal_progress_pct"`
	GeneratedAt           time.Time       `json:"generated_at"`
}
