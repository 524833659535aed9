package metrics

import (
	"sort"
	"time"

	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const maxBusyHours = 5

// OperationalInput reúne vendas e agendamentos da janela para a faceta operacional.
// Location define a hora local usada nos horários de pico.
type OperationalInput struct {
	Period       domain.Period
	Sales        []*domain.Sale
	Appointments []*domain.Appointment
	Services     domain.ServiceNames
	Location     *time.Location
}

// AggregateOperations calcula serviços mais e menos vendidos, horários de pico,
// cancelamentos, faltas e o intervalo médio entre visitas
func AggregateOperations(in OperationalInput) domain.OperationalMetrics {
	loc := locationOrUTC(in.Location)

	metrics := domain.OperationalMetrics{
		Period:               in.Period,
		BusyHours:            busyHours(in.Sales, loc),
		AvgDaysBetweenVisits: avgDaysBetweenVisits(in.Sales),
	}

	metrics.MostSold, metrics.LeastSold = soldExtremes(in.Sales, in.Services)

	for _, appointment := range in.Appointments {
		switch {
		case appointment.HasStatus(domain.AppointmentStatusCanceled):
			metrics.Canceled++
		case appointment.HasStatus(domain.AppointmentStatusNoShow):
			metrics.NoShows++
		}
	}

	return metrics
}

// soldExtremes percorre os grupos na ordem da primeira venda; em empate fica o primeiro encontrado
func soldExtremes(sales []*domain.Sale, names domain.ServiceNames) (*domain.ServiceCount, *domain.ServiceCount) {
	groups := groupByService(sales)
	if len(groups) == 0 {
		return nil, nil
	}

	most, least := groups[0], groups[0]
	for _, group := range groups[1:] {
		if group.qty > most.qty {
			most = group
		}
		if group.qty < least.qty {
			least = group
		}
	}

	return &domain.ServiceCount{
			ServiceID: most.serviceID,
			Name:      names.Lookup(most.serviceID),
			Qty:       most.qty,
		}, &domain.ServiceCount{
			ServiceID: least.serviceID,
			Name:      names.Lookup(least.serviceID),
			Qty:       least.qty,
		}
}

// busyHours conta vendas pela hora local; empates saem em ordem crescente de hora
func busyHours(sales []*domain.Sale, loc *time.Location) []domain.HourCount {
	var counts [24]int
	for _, sale := range sales {
		counts[sale.SaleDate.In(loc).Hour()]++
	}

	hours := make([]domain.HourCount, 0)
	for hour, count := range counts {
		if count > 0 {
			hours = append(hours, domain.HourCount{Hour: hour, Count: count})
		}
	}

	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].Count > hours[j].Count
	})

	if len(hours) > maxBusyHours {
		hours = hours[:maxBusyHours]
	}

	return hours
}

// avgDaysBetweenVisits faz a média de todos os intervalos de todos os clientes,
// sem calcular uma média por cliente antes
func avgDaysBetweenVisits(sales []*domain.Sale) float64 {
	var (
		sum  float64
		gaps int
	)

	for _, group := range groupByClient(sales) {
		if len(group.dates) < 2 {
			continue
		}

		dates := make([]time.Time, len(group.dates))
		copy(dates, group.dates)
		sort.Slice(dates, func(i, j int) bool {
			return dates[i].Before(dates[j])
		})

		for i := 1; i < len(dates); i++ {
			sum += dates[i].Sub(dates[i-1]).Hours() / 24
			gaps++
		}
	}

	if gaps == 0 {
		return 0
	}

	return sum / float64(gaps)
}
