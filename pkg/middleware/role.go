package middleware

import (
	"net/http"

	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

// RoleMiddleware restringe o acesso aos papéis informados
func RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logger.Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRole == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logger.WithFields(log.Fields{
					"user_id":   userClaims.UserID,
					"user_role": userClaims.UserRole,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func SuperAdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleSuperAdmin)
}

// ManagersOnly libera quem pode alterar metas, configurações e usuários
func ManagersOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleSuperAdmin)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleEstablishment, domain.RoleSuperAdmin)
}
