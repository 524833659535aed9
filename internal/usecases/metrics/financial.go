package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// FinancialInput reúne as linhas já buscadas para a faceta financeira.
// Goal deve ser nil quando não existe meta para o mês da janela.
type FinancialInput struct {
	Period     domain.Period
	Sales      []*domain.Sale
	PriorSales []*domain.Sale
	Services   domain.ServiceNames
	Goal       *domain.Goal
	Now        time.Time
	Location   *time.Location
}

// AggregateFinancial calcula faturamento, crescimento, tickets, quebra por serviço e a situação da meta
func AggregateFinancial(in FinancialInput) domain.FinancialMetrics {
	loc := locationOrUTC(in.Location)

	total := sumAmounts(in.Sales)
	priorTotal := sumAmounts(in.PriorSales)
	clients := groupByClient(in.Sales)

	metrics := domain.FinancialMetrics{
		Period:              in.Period,
		Total:               total,
		PriorTotal:          priorTotal,
		UniqueClientCount:   len(clients),
		SalesCount:          len(in.Sales),
		TicketPerClient:     divOrZero(total, len(clients)),
		TicketPerService:    divOrZero(total, len(in.Sales)),
		PerServiceBreakdown: BreakdownByService(in.Sales, in.Services),
	}

	if !priorTotal.IsZero() {
		growth := total.Sub(priorTotal).Div(priorTotal).Mul(hundred).InexactFloat64()
		metrics.GrowthPct = &growth
	}

	// Meta e projeção só fazem sentido para janelas de um único mês
	if !in.Period.SpansSingleMonth(loc) {
		return metrics
	}

	if in.Goal != nil {
		current := in.Goal.Current()
		remaining := in.Goal.Remaining()

		metrics.Goal = &domain.GoalSummary{
			Month:         in.Goal.Month,
			Year:          in.Goal.Year,
			TargetAmount:  in.Goal.TargetAmount,
			CurrentAmount: current,
		}
		metrics.RemainingToGoal = &remaining

		if pct, ok := ProgressPct(current, in.Goal.TargetAmount); ok {
			metrics.GoalProgressPct = &pct
		}
	}

	if projection, ok := project(in, total, loc); ok {
		metrics.Projection = &projection
	}

	return metrics
}

// project extrapola o realizado até o fim do mês, apenas quando a janela é o mês corrente
func project(in FinancialInput, total decimal.Decimal, loc *time.Location) (decimal.Decimal, bool) {
	if in.Now.IsZero() {
		return decimal.Zero, false
	}

	now := in.Now.In(loc)
	month, year := in.Period.StartMonth(loc)
	if int(now.Month()) != month || now.Year() != year {
		return decimal.Zero, false
	}

	daysElapsed := now.Day()
	if daysElapsed == 0 {
		return decimal.Zero, false
	}

	base := total
	if in.Goal != nil && in.Goal.CurrentAmount.Valid {
		base = in.Goal.CurrentAmount.Decimal
	}

	daysInMonth := domain.DaysInMonth(year, time.Month(month), loc)

	return base.Mul(decimal.NewFromInt(int64(daysInMonth))).Div(decimal.NewFromInt(int64(daysElapsed))), true
}

// BreakdownByService ordena por total decrescente; empates mantêm a ordem da primeira venda
func BreakdownByService(sales []*domain.Sale, names domain.ServiceNames) []domain.ServiceBreakdownRow {
	groups := groupByService(sales)

	rows := make([]domain.ServiceBreakdownRow, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, domain.ServiceBreakdownRow{
			ServiceID:   group.serviceID,
			ServiceName: names.Lookup(group.serviceID),
			Qty:         group.qty,
			Total:       group.total,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})

	return rows
}
