package metrics

import (
	"context"

	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// Aggregator expõe as quatro facetas de métricas de um estabelecimento para uma janela
type Aggregator interface {
	GetFinancialMetrics(ctx context.Context, establishmentID string, period domain.Period) (*domain.FinancialMetrics, error)
	GetClientMetrics(ctx context.Context, establishmentID string, period domain.Period) (*domain.ClientMetrics, error)
	GetOperationalMetrics(ctx context.Context, establishmentID string, period domain.Period) (*domain.OperationalMetrics, error)
	GetInsights(ctx context.Context, establishmentID string, period domain.Period) (*domain.InsightsMetrics, error)
}
