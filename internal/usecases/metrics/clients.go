package metrics

import (
	"sort"
	"time"

	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const (
	maxBirthdays  = 10
	maxTopClients = 10
)

// ClientInput reúne o cadastro e as vendas da janela para a faceta de clientes.
// InactiveDaysThreshold menor ou igual a zero usa o padrão de 20 dias.
type ClientInput struct {
	Period                domain.Period
	Clients               []*domain.Client // cadastro completo, sem filtro de data
	Sales                 []*domain.Sale
	InactiveDaysThreshold int
	Now                   time.Time
	Location              *time.Location
}

// AggregateClients calcula atividade, novos clientes, recorrência, aniversariantes e ranking
func AggregateClients(in ClientInput) domain.ClientMetrics {
	loc := locationOrUTC(in.Location)

	threshold := in.InactiveDaysThreshold
	if threshold <= 0 {
		threshold = domain.DefaultInactiveDaysThreshold
	}

	cutoff := InactivityCutoff(in.Now, loc, threshold)
	inactive := CountInactive(in.Clients, cutoff)

	groups := groupByClient(in.Sales)

	recurring := 0
	for _, group := range groups {
		if group.qty >= 2 {
			recurring++
		}
	}

	retention := 0.0
	if len(groups) > 0 {
		retention = float64(recurring) / float64(len(groups)) * 100
	}

	return domain.ClientMetrics{
		Period:                in.Period,
		InactiveDaysThreshold: threshold,
		ActiveCount:           len(in.Clients) - inactive,
		InactiveCount:         inactive,
		NewClientsCount:       countNewClients(in.Clients, in.Period),
		UniqueClientsInWindow: len(groups),
		RecurringClientsCount: recurring,
		RetentionRate:         retention,
		TicketPerClient:       divOrZero(sumAmounts(in.Sales), len(groups)),
		Birthdays:             birthdaysOfMonth(in.Clients, in.Period, loc),
		TopClients:            topClients(groups, in.Clients),
	}
}

func countNewClients(clients []*domain.Client, period domain.Period) int {
	count := 0
	for _, client := range clients {
		if period.Contains(client.CreatedAt) {
			count++
		}
	}
	return count
}

// birthdaysOfMonth mantém a ordem do cadastro. A data de nascimento é uma data civil,
// então o mês é lido sem conversão de fuso.
func birthdaysOfMonth(clients []*domain.Client, period domain.Period, loc *time.Location) []domain.ClientRef {
	month, _ := period.StartMonth(loc)

	birthdays := make([]domain.ClientRef, 0)
	for _, client := range clients {
		if len(birthdays) == maxBirthdays {
			break
		}
		if client.BirthDate == nil || int(client.BirthDate.Month()) != month {
			continue
		}
		birthdays = append(birthdays, domain.ClientRef{
			ID:        client.ID,
			Name:      client.Name,
			BirthDate: client.BirthDate,
		})
	}

	return birthdays
}

func topClients(groups []*clientGroup, clients []*domain.Client) []domain.TopClient {
	names := make(map[string]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}

	ranked := make([]domain.TopClient, 0, len(groups))
	for _, group := range groups {
		name, ok := names[group.clientID]
		if !ok {
			name = domain.UnknownName
		}
		ranked = append(ranked, domain.TopClient{
			ClientID: group.clientID,
			Name:     name,
			Qty:      group.qty,
			Total:    group.total,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	if len(ranked) > maxTopClients {
		ranked = ranked[:maxTopClients]
	}

	return ranked
}
