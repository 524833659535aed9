package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

const (
	CronJobTypeGoalProgress = "goal-progress"
	CronJobTypeAll          = "all"
)

// CronJob é um agendador que aceita execução manual
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices indexa os agendadores pelo tipo usado na URL
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s)+1)
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return append(types, CronJobTypeAll)
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, job := range services {
				job.TriggerManualSync()
			}
		} else {
			job, ok := services[cronType]
			if !ok || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
				return
			}
			job.TriggerManualSync()
		}

		logger.WithField("job", cronType).Info("cron: execução manual solicitada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
