package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client é um cliente do estabelecimento. LastServiceDate é nulo para quem nunca foi atendido.
type Client struct {
	ID              string          `json:"id"`
	EstablishmentID string          `json:"establishment_id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Email           *string         `json:"email,omitempty"`
	BirthDate       *time.Time      `json:"birth_date,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	LastServiceDate *time.Time      `json:"last_service_date,omitempty"`
	VisitCount      int             `json:"visit_count"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
}

// IsInactiveAt indica se o último atendimento é anterior ao corte (ou inexistente)
func (c *Client) IsInactiveAt(cutoff time.Time) bool {
	return c.LastServiceDate == nil || c.LastServiceDate.Before(cutoff)
}

type ClientRef struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// ClientFilterInactive lista só quem passou do limite de inatividade configurado
const ClientFilterInactive = "inactive"

type CreateClientRequest struct {
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     *string    `json:"email,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}
