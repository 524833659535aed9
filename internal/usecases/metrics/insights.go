package metrics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// InsightsInput reúne as vendas da janela, a meta do mês e o cadastro completo.
// Goal deve ser nil quando a janela cobre mais de um mês ou não há meta.
type InsightsInput struct {
	Period                domain.Period
	Sales                 []*domain.Sale
	Services              domain.ServiceNames
	Goal                  *domain.Goal
	Clients               []*domain.Client // cadastro completo, avaliado em Now
	InactiveDaysThreshold int
	Now                   time.Time
	Location              *time.Location
}

// AggregateInsights cruza ticket médio, meta e inatividade.
// O valor potencial perdido combina a inatividade de agora com o ticket por cliente da janela.
func AggregateInsights(in InsightsInput) domain.InsightsMetrics {
	loc := locationOrUTC(in.Location)

	total := sumAmounts(in.Sales)
	uniqueClients := len(groupByClient(in.Sales))

	avgTicket := divOrZero(total, len(in.Sales))
	ticketPerClient := divOrZero(total, uniqueClients)

	inactive := CountInactive(in.Clients, InactivityCutoff(in.Now, loc, in.InactiveDaysThreshold))

	metrics := domain.InsightsMetrics{
		Period:                 in.Period,
		AvgTicketPerService:    avgTicket,
		TicketPerClient:        ticketPerClient,
		TopContributingService: topContributingService(in.Sales, in.Services),
		InactiveClientCount:    inactive,
		PotentialLostValue:     ticketPerClient.Mul(decimal.NewFromInt(int64(inactive))),
	}

	if in.Goal == nil || !in.Period.SpansSingleMonth(loc) {
		return metrics
	}

	remaining := in.Goal.Remaining()
	metrics.RemainingToGoal = &remaining

	if avgTicket.IsPositive() {
		needed := servicesNeeded(remaining, total, len(in.Sales))
		metrics.ServicesNeededForGoal = &needed
	}

	return metrics
}

// servicesNeeded arredonda para cima remaining / (total / count) sem passar pelo ticket
// já dividido, para não perder precisão
func servicesNeeded(remaining, total decimal.Decimal, count int) int64 {
	numerator := remaining.Mul(decimal.NewFromInt(int64(count)))
	quotient, rest := numerator.QuoRem(total, 0)

	needed := quotient.IntPart()
	if rest.IsPositive() {
		needed++
	}
	return needed
}

// topContributingService retorna o serviço de maior soma; em empate fica o primeiro encontrado
func topContributingService(sales []*domain.Sale, names domain.ServiceNames) *domain.ServiceTotal {
	var top *serviceGroup
	for _, group := range groupByService(sales) {
		if top == nil || group.total.GreaterThan(top.total) {
			top = group
		}
	}

	if top == nil {
		return nil
	}

	return &domain.ServiceTotal{
		ServiceID: top.serviceID,
		Name:      names.Lookup(top.serviceID),
		Total:     top.total,
	}
}
