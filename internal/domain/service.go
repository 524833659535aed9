package domain

import "github.com/shopspring/decimal"

type Service struct {
	ID              string          `json:"id"`
	EstablishmentID string          `json:"establishment_id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Active          bool            `json:"active"`
}

type Professional struct {
	ID              string `json:"id"`
	EstablishmentID string `json:"establishment_id"`
	Name            string `json:"name"`
	Active          bool   `json:"active"`
}

// ServiceNames indexa o nome de cada serviço pelo id
type ServiceNames map[string]string

func NewServiceNames(services []*Service) ServiceNames {
	names := make(ServiceNames, len(services))
	for _, s := range services {
		names[s.ID] = s.Name
	}
	return names
}

// Lookup retorna o nome do serviço ou o marcador "-" quando o id é desconhecido
func (n ServiceNames) Lookup(id string) string {
	if name, ok := n[id]; ok {
		return name
	}
	return UnknownName
}

// UnknownName é exibido quando um id não é encontrado no cadastro
const UnknownName = "-"

type CreateServiceRequest struct {
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Active          *bool           `json:"active,omitempty"` // ausente = ativo
}

type CreateProfessionalRequest struct {
	Name   string `json:"name"`
	Active *bool  `json:"active,omitempty"`
}

// ServiceProfessional vincula um profissional a um serviço que ele atende
type ServiceProfessional struct {
	ID              string `json:"id"`
	EstablishmentID string `json:"establishment_id"`
	ServiceID       string `json:"service_id"`
	ProfessionalID  string `json:"professional_id"`
}

type LinkProfessionalRequest struct {
	ServiceID      string `json:"service_id"`
	ProfessionalID string `json:"professional_id"`
}
