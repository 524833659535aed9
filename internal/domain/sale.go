package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale é um atendimento lançado. Não possui fluxo de edição.
type Sale struct {
	ID              string          `json:"id"`
	EstablishmentID string          `json:"establishment_id"`
	ClientID        string          `json:"client_id"`
	ServiceID       string          `json:"service_id"`
	AppointmentID   *string         `json:"appointment_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	SaleDate        time.Time       `json:"sale_date"`
	PaymentMethod   *string         `json:"payment_method,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type RegisterSaleRequest struct {
	ClientID      string          `json:"client_id"`
	ServiceID     string          `json:"service_id"`
	AppointmentID *string         `json:"appointment_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	SaleDate      *time.Time      `json:"sale_date"`
	PaymentMethod string          `json:"payment_method"`
	Notes         *string         `json:"notes,omitempty"`
}
