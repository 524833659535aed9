package metrics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// serviceGroup acumula as vendas de um serviço
type serviceGroup struct {
	serviceID string
	qty       int
	total     decimal.Decimal
}

// clientGroup acumula as vendas de um cliente
type clientGroup struct {
	clientID string
	qty      int
	total    decimal.Decimal
	dates    []time.Time
}

func sumAmounts(sales []*domain.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Amount)
	}
	return total
}

// groupByService agrupa as vendas por serviço preservando a ordem da primeira ocorrência
func groupByService(sales []*domain.Sale) []*serviceGroup {
	index := make(map[string]*serviceGroup)
	groups := make([]*serviceGroup, 0)

	for _, sale := range sales {
		group, ok := index[sale.ServiceID]
		if !ok {
			group = &serviceGroup{serviceID: sale.ServiceID, total: decimal.Zero}
			index[sale.ServiceID] = group
			groups = append(groups, group)
		}
		group.qty++
		group.total = group.total.Add(sale.Amount)
	}

	return groups
}

// groupByClient agrupa as vendas por cliente preservando a ordem da primeira ocorrência
func groupByClient(sales []*domain.Sale) []*clientGroup {
	index := make(map[string]*clientGroup)
	groups := make([]*clientGroup, 0)

	for _, sale := range sales {
		group, ok := index[sale.ClientID]
		if !ok {
			group = &clientGroup{clientID: sale.ClientID, total: decimal.Zero}
			index[sale.ClientID] = group
			groups = append(groups, group)
		}
		group.qty++
		group.total = group.total.Add(sale.Amount)
		group.dates = append(group.dates, sale.SaleDate)
	}

	return groups
}

// divOrZero divide e devolve zero quando não há divisor
func divOrZero(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

// InactivityCutoff é a meia-noite local de hoje menos o limite de dias
func InactivityCutoff(now time.Time, loc *time.Location, thresholdDays int) time.Time {
	if thresholdDays <= 0 {
		thresholdDays = domain.DefaultInactiveDaysThreshold
	}
	return domain.StartOfDay(now, loc).AddDate(0, 0, -thresholdDays)
}

// CountInactive conta os clientes sem atendimento desde o corte, incluindo os que nunca foram atendidos
func CountInactive(clients []*domain.Client, cutoff time.Time) int {
	inactive := 0
	for _, client := range clients {
		if client.IsInactiveAt(cutoff) {
			inactive++
		}
	}
	return inactive
}

// ProgressPct limita o progresso da meta a 100%. O segundo retorno é falso quando a meta é zero.
func ProgressPct(current, target decimal.Decimal) (float64, bool) {
	if !target.IsPositive() {
		return 0, false
	}
	pct := current.Div(target).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return 100, true
	}
	if pct.IsNegative() {
		return 0, true
	}
	return pct.InexactFloat64(), true
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
