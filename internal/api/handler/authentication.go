package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
	"github.com/vfg2006/salon-manager-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("auth: falha no login")
			handleAuthError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			handleAuthError(w, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

// handleAuthError usa o código já presente no AuthError e cai para os erros sentinela
func handleAuthError(w http.ResponseWriter, err error, fallback string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		details := map[string]any{}
		if authErr.UserID != "" {
			details["user_id"] = authErr.UserID
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)
	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
