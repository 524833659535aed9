package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/roster"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

// agendaDays é a janela padrão da agenda quando nenhuma data é informada
const agendaDays = 7

func ListClients(service roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		clients, err := service.ListClients(r.Context(), scope.EstablishmentID, r.URL.Query().Get("filter"))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("clients: falha ao listar clientes")
			writeRosterError(w, err, "Erro ao buscar clientes")
			return
		}

		writeJSON(w, r, http.StatusOK, clients)
	})
}

func CreateClient(service roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		var req domain.CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		client, err := service.CreateClient(r.Context(), scope.EstablishmentID, &req)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"establishment_id": scope.EstablishmentID,
				"error":            err.Error(),
			}).Warn("clients: falha ao cadastrar cliente")
			writeRosterError(w, err, "Erro ao cadastrar cliente")
			return
		}

		writeJSON(w, r, http.StatusCreated, client)
	})
}

func ListServices(service roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		services, err := service.ListServices(r.Context(), scope.EstablishmentID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("services: falha ao listar serviços")
			writeRosterError(w, err, "Erro ao buscar serviços")
			return
		}

		writeJSON(w, r, http.StatusOK, services)
	})
}

func CreateService(service roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		var req domain.CreateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateService(r.Context(), scope.EstablishmentID, &req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("services: falha ao cadastrar serviço")
			writeRosterError(w, err, "Erro ao cadastrar serviço")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func ListProfessionals(service roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		professionals, err := service.ListProfessionals(r.Context(), scope.EstablishmentID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("professionals: falha ao listar profissionais")
			writeRosterError(w, err, "Erro ao buscar profissionais")
			return
		}

		writeJSON(w, r, http.StatusOK, professionals)
	})
}

func CreateProfessional(service roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		var req domain.CreateProfessionalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		professional, err := service.CreateProfessional(r.Context(), scope.EstablishmentID, &req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("professionals: falha ao cadastrar profissional")
			writeRosterError(w, err, "Erro ao cadastrar profissional")
			return
		}

		writeJSON(w, r, http.StatusCreated, professional)
	})
}

func ListServiceProfessionals(service roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		links, err := service.ListServiceProfessionals(r.Context(), scope.EstablishmentID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("professionals: falha ao listar vínculos")
			writeRosterError(w, err, "Erro ao buscar vínculos")
			return
		}

		writeJSON(w, r, http.StatusOK, links)
	})
}

func LinkProfessional(service roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		var req domain.LinkProfessionalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		link, err := service.LinkProfessional(r.Context(), scope.EstablishmentID, &req)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"service_id":      req.ServiceID,
				"professional_id": req.ProfessionalID,
				"error":           err.Error(),
			}).Warn("professionals: falha ao vincular profissional")
			writeRosterError(w, err, "Erro ao vincular profissional")
			return
		}

		writeJSON(w, r, http.StatusCreated, link)
	})
}

func UnlinkProfessional(service roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		linkID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.UnlinkProfessional(r.Context(), scope.EstablishmentID, linkID); err != nil {
			log.ForContext(r.Context()).WithField("link_id", linkID).WithError(err).Warn("professionals: falha ao desvincular profissional")
			writeRosterError(w, err, "Erro ao desvincular profissional")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// GetAgenda usa os próximos sete dias quando start_date e end_date não são informados
func GetAgenda(service roster.Roster, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := resolveScope(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		period := agendaWindow(time.Now(), loc)
		if query.Get("start_date") != "" || query.Get("end_date") != "" {
			if period, ok = parsePeriod(w, r, loc); !ok {
				return
			}
		}

		agenda, err := service.Agenda(r.Context(), scope.EstablishmentID, period)
		if requestGone(r) {
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("agenda: falha ao montar agenda")
			writeRosterError(w, err, "Erro ao carregar agenda")
			return
		}

		writeJSON(w, r, http.StatusOK, agenda)
	})
}

func agendaWindow(now time.Time, loc *time.Location) domain.Period {
	start := domain.StartOfDay(now, loc)
	return domain.NewPeriod(start, utils.EndOfDay(start.AddDate(0, 0, agendaDays-1)))
}

func writeRosterError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, roster.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, roster.ErrInvalidFilter),
		errors.Is(err, roster.ErrInvalidPrice),
		errors.Is(err, roster.ErrInvalidDuration):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, roster.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
	case errors.Is(err, roster.ErrServiceNotFound),
		errors.Is(err, roster.ErrProfessionalNotFound),
		errors.Is(err, roster.ErrLinkNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, roster.ErrAlreadyLinked), errors.Is(err, roster.ErrClientAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrAlreadyExists, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
