package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de acesso
const (
	RoleAdmin         = "admin"
	RoleEstablishment = "establishment"
	RoleSuperAdmin    = "super_admin"
)

type User struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"password,omitempty"`
	Role            string    `json:"role"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Claims struct {
	UserID          string
	UserName        string
	UserEmail       string
	UserRole        string
	EstablishmentID string
	jwt.RegisteredClaims
}

// Scope é o estabelecimento e as permissões de quem faz a requisição,
// repassados explicitamente para os casos de uso
type Scope struct {
	EstablishmentID string
	Role            string
}

func (s Scope) IsSuperAdmin() bool {
	return s.Role == RoleSuperAdmin
}

// CanManage indica se o escopo pode alterar metas e configurações
func (s Scope) CanManage() bool {
	return s.Role == RoleAdmin || s.Role == RoleEstablishment || s.Role == RoleSuperAdmin
}
