package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/metrics"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

// facetMessages são exibidas ao usuário quando a leitura de uma faceta falha
var facetMessages = map[string]string{
	domain.FacetFinancial:   "Erro ao carregar métricas financeiras.",
	domain.FacetClients:     "Erro ao carregar métricas de clientes.",
	domain.FacetOperational: "Erro ao carregar métricas operacionais.",
	domain.FacetInsights:    "Erro ao carregar insights.",
}

type facetFetcher func(ctx context.Context, establishmentID string, period domain.Period) (any, error)

func GetFinancialMetrics(service metrics.Aggregator, loc *time.Location) http.Handler {
	return facetHandler(domain.FacetFinancial, loc, func(ctx context.Context, est string, p domain.Period) (any, error) {
		return service.GetFinancialMetrics(ctx, est, p)
	})
}

func GetClientMetrics(service metrics.Aggregator, loc *time.Location) http.Handler {
	return facetHandler(domain.FacetClients, loc, func(ctx context.Context, est string, p domain.Period) (any, error) {
		return service.GetClientMetrics(ctx, est, p)
	})
}

func GetOperationalMetrics(service metrics.Aggregator, loc *time.Location) http.Handler {
	return facetHandler(domain.FacetOperational, loc, func(ctx context.Context, est string, p domain.Period) (any, error) {
		return service.GetOperationalMetrics(ctx, est, p)
	})
}

func GetInsights(service metrics.Aggregator, loc *time.Location) http.Handler {
	return facetHandler(domain.FacetInsights, loc, func(ctx context.Context, est string, p domain.Period) (any, error) {
		return service.GetInsights(ctx, est, p)
	})
}

func facetHandler(facet string, loc *time.Location, fetch facetFetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		period, ok := parsePeriod(w, r, loc)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"facet":            facet,
			"establishment_id": scope.EstablishmentID,
			"start_date":       period.Start.Format(time.DateOnly),
			"end_date":         period.End.Format(time.DateOnly),
		}).Debug("metrics: calculando faceta")

		result, err := fetch(r.Context(), scope.EstablishmentID, period)
		if requestGone(r) {
			logger.WithField("facet", facet).Debug("metrics: requisição cancelada, resposta descartada")
			return
		}

		if err != nil {
			writeMetricsError(w, facet, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func writeMetricsError(w http.ResponseWriter, facet string, err error) {
	var fetchErr *metrics.FetchError

	switch {
	case errors.As(err, &fetchErr), errors.Is(err, metrics.ErrFetchFailure):
		apiErrors.WriteError(w, apiErrors.ErrMetricsUnavailable, facetMessages[facet], map[string]any{"facet": facet})
	case errors.Is(err, metrics.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido", nil)
	case errors.Is(err, metrics.ErrMissingEstablishment):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Estabelecimento não informado", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, facetMessages[facet], nil)
	}
}
