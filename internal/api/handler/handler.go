package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
	"github.com/vfg2006/salon-manager-api/pkg/middleware"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Middlewares = []func(http.Handler) http.Handler

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// resolveScope monta o escopo a partir do token; super admins podem escolher o estabelecimento via establishment_id
func resolveScope(w http.ResponseWriter, r *http.Request) (domain.Scope, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return domain.Scope{}, false
	}

	scope := domain.Scope{
		EstablishmentID: claims.EstablishmentID,
		Role:            claims.UserRole,
	}

	if requested := r.URL.Query().Get("establishment_id"); requested != "" && requested != scope.EstablishmentID {
		if !scope.IsSuperAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Sem permissão para acessar outro estabelecimento", nil)
			return domain.Scope{}, false
		}
		scope.EstablishmentID = requested
	}

	if scope.EstablishmentID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Estabelecimento não informado", nil)
		return domain.Scope{}, false
	}

	return scope, true
}

func parsePeriod(w http.ResponseWriter, r *http.Request, loc *time.Location) (domain.Period, bool) {
	query := r.URL.Query()

	start, end, err := utils.ParseDateRange(query.Get("start_date"), query.Get("end_date"), loc)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido", map[string]any{"error": err.Error()})
		return domain.Period{}, false
	}

	period := domain.NewPeriod(start, end)
	if !period.IsValid() {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Data inicial posterior à data final", nil)
		return domain.Period{}, false
	}

	return period, true
}

// requestGone indica que o cliente desistiu da requisição e a resposta pode ser descartada
func requestGone(r *http.Request) bool {
	return r.Context().Err() != nil
}
