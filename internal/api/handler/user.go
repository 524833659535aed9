package handler

import (
	"net/http"

	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
	"github.com/vfg2006/salon-manager-api/pkg/middleware"
)

type CreateUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Role            string `json:"role"`
	EstablishmentID string `json:"establishment_id"`
}

// CreateUser cadastra um usuário no estabelecimento de quem faz a requisição
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		scope := domain.Scope{EstablishmentID: claims.EstablishmentID, Role: claims.UserRole}
		user, err := service.CreateUser(r.Context(), scope, &domain.User{
			Name:            req.Name,
			Email:           req.Email,
			PasswordHash:    req.Password,
			Role:            req.Role,
			EstablishmentID: req.EstablishmentID,
		})
		if err != nil {
			logger.WithError(err).Warn("users: falha ao criar usuário")
			handleAuthError(w, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		users, err := service.ListUsers(r.Context(), domain.Scope{EstablishmentID: claims.EstablishmentID, Role: claims.UserRole})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("users: falha ao listar usuários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, users)
	}
}
