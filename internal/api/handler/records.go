package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/records"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

func RegisterSale(service records.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		var req domain.RegisterSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sale, err := service.RegisterSale(r.Context(), scope.EstablishmentID, &req)
		if err != nil {
			logger.WithFields(log.Fields{
				"establishment_id": scope.EstablishmentID,
				"error":            err.Error(),
			}).Warn("sales: falha ao registrar venda")
			writeRecordsError(w, err, "Erro ao registrar venda")
			return
		}

		writeJSON(w, r, http.StatusCreated, sale)
	})
}

func SetMonthlyGoal(service records.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		var req domain.SetGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		goal, err := service.SetMonthlyGoal(r.Context(), scope.EstablishmentID, &req)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"establishment_id": scope.EstablishmentID,
				"error":            err.Error(),
			}).Warn("goals: falha ao salvar meta")
			writeRecordsError(w, err, "Erro ao salvar meta")
			return
		}

		writeJSON(w, r, http.StatusOK, goal)
	})
}

func GetSettings(service records.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		settings, err := service.GetSettings(r.Context(), scope.EstablishmentID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("settings: falha ao buscar configurações")
			writeRecordsError(w, err, "Erro ao buscar configurações")
			return
		}

		writeJSON(w, r, http.StatusOK, settings)
	})
}

func UpdateSettings(service records.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		var req domain.UpdateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		settings, err := service.SetInactiveDaysThreshold(r.Context(), scope.EstablishmentID, req.InactiveDaysThreshold)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("settings: falha ao salvar configurações")
			writeRecordsError(w, err, "Erro ao salvar configurações")
			return
		}

		writeJSON(w, r, http.StatusOK, settings)
	})
}

func writeRecordsError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, records.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, records.ErrInvalidAmount),
		errors.Is(err, records.ErrInvalidMonth),
		errors.Is(err, records.ErrInvalidYear),
		errors.Is(err, records.ErrInvalidTarget),
		errors.Is(err, records.ErrInvalidThreshold):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, records.ErrClientNotFound), errors.Is(err, records.ErrServiceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
