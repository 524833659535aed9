package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/internal/usecases/metrics"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

func GetRevenueReport(service reporting.Reporter, loc *time.Location) http.Handler {
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

		report, err := service.RevenueReport(r.Context(), scope.EstablishmentID, period)
		if requestGone(r) {
			return
		}
		if err != nil {
			logger.WithFields(log.Fields{
				"report":           "revenue",
				"establishment_id": scope.EstablishmentID,
				"error":            err.Error(),
			}).Error("reports: falha ao gerar relatório de faturamento")
			writeReportError(w, err, "Erro ao carregar relatório de faturamento.")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetServicesReport(service reporting.Reporter, loc *time.Location) http.Handler {
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

		report, err := service.ServicesReport(r.Context(), scope.EstablishmentID, period)
		if requestGone(r) {
			return
		}
		if err != nil {
			logger.WithFields(log.Fields{
				"report":           "services",
				"establishment_id": scope.EstablishmentID,
				"error":            err.Error(),
			}).Error("reports: falha ao gerar relatório de serviços")
			writeReportError(w, err, "Erro ao carregar relatório de serviços.")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		summary, err := service.Dashboard(r.Context(), scope.EstablishmentID)
		if requestGone(r) {
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"report":           "dashboard",
				"establishment_id": scope.EstablishmentID,
				"error":            err.Error(),
			}).Error("reports: falha ao montar dashboard")
			writeReportError(w, err, "Erro ao carregar o painel.")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func writeReportError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, reporting.ErrReportFailure):
		apiErrors.WriteError(w, apiErrors.ErrReportUnavailable, message, nil)
	case errors.Is(err, metrics.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
