package domain

import "github.com/shopspring/decimal"

// Nomes das facetas de métricas
const (
	FacetFinancial   = "financial"
	FacetClients     = "clients"
	FacetOperational = "operations"
	FacetInsights    = "insights"
)

type ServiceBreakdownRow struct {
	ServiceID   string          `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Qty         int             `json:"qty"`
	Total       decimal.Decimal `json:"total"`
}

type GoalSummary struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

// FinancialMetrics agrega o faturamento da janela. Campos ponteiro ficam nulos quando não se aplicam.
type FinancialMetrics struct {
	Period              Period                `json:"period"`
	Total               decimal.Decimal       `json:"total"`
	PriorTotal          decimal.Decimal       `json:"prior_total"`
	GrowthPct           *float64              `json:"growth_pct"`
	UniqueClientCount   int                   `json:"unique_client_count"`
	SalesCount          int                   `json:"sales_count"`
	TicketPerClient     decimal.Decimal       `json:"ticket_per_client"`
	TicketPerService    decimal.Decimal       `json:"ticket_per_service"`
	PerServiceBreakdown []ServiceBreakdownRow `json:"per_service_breakdown"`
	Goal                *GoalSummary          `json:"goal"`
	GoalProgressPct     *float64              `json:"goal_progress_pct"`
	RemainingToGoal     *decimal.Decimal      `json:"remaining_to_goal"`
	Projection          *decimal.Decimal      `json:"projection"`
}

type TopClient struct {
	ClientID string          `json:"client_id"`
	Name     string          `json:"name"`
	Qty      int             `json:"qty"`
	Total    decimal.Decimal `json:"total"`
}

type ClientMetrics struct {
	Period                Period          `json:"period"`
	InactiveDaysThreshold int             `json:"inactive_days_threshold"`
	ActiveCount           int             `json:"active_count"`
	InactiveCount         int             `json:"inactive_count"`
	NewClientsCount       int             `json:"new_clients_count"`
	UniqueClientsInWindow int             `json:"unique_clients_in_window"`
	RecurringClientsCount int             `json:"recurring_clients_count"`
	RetentionRate         float64         `json:"retention_rate"`
	TicketPerClient       decimal.Decimal `json:"ticket_per_client"`
	Birthdays             []ClientRef     `json:"birthdays"`
	TopClients            []TopClient     `json:"top_clients"`
}

type ServiceCount struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type OperationalMetrics struct {
	Period               Period        `json:"period"`
	MostSold             *ServiceCount `json:"most_sold"`
	LeastSold            *ServiceCount `json:"least_sold"`
	BusyHours            []HourCount   `json:"busy_hours"`
	Canceled             int           `json:"canceled"`
	NoShows              int           `json:"no_shows"`
	AvgDaysBetweenVisits float64       `json:"avg_days_between_visits"`
}

type ServiceTotal struct {
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Total     decimal.Decimal `json:"total"`
}

// InsightsMetrics cruza dados das outras facetas. PotentialLostValue multiplica a inatividade
// avaliada agora pelo ticket por cliente da janela selecionada.
type InsightsMetrics struct {
	Period                 Period           `json:"period"`
	AvgTicketPerService    decimal.Decimal  `json:"avg_ticket_per_service"`
	TicketPerClient        decimal.Decimal  `json:"ticket_per_client"`
	RemainingToGoal        *decimal.Decimal `json:"remaining_to_goal"`
	ServicesNeededForGoal  *int64           `json:"services_needed_for_goal"`
	TopContributingService *ServiceTotal    `json:"top_contributing_service"`
	InactiveClientCount    int              `json:"inactive_client_count"`
	PotentialLostValue     decimal.Decimal  `json:"potential_lost_value"`
}
