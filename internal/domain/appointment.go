package domain

import (
	"strings"
	"time"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCanceled  = "canceled"
	AppointmentStatusNoShow    = "no_show"
)

type Appointment struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	ClientID        string    `json:"client_id"`
	ServiceID       string    `json:"service_id"`
	ProfessionalID  *string   `json:"professional_id,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          *string   `json:"status,omitempty"`
}

// HasStatus compara o status sem diferenciar maiúsculas, sem nenhuma outra normalização
func (a *Appointment) HasStatus(status string) bool {
	if a.Status == nil {
		return status == ""
	}
	return strings.ToLower(*a.Status) == status
}

// AgendaEntry é um agendamento com os nomes já resolvidos; ids desconhecidos aparecem como "-"
type AgendaEntry struct {
	ID               string    `json:"id"`
	AppointmentDate  time.Time `json:"appointment_date"`
	Status           *string   `json:"status,omitempty"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	ServiceID        string    `json:"service_id"`
	ServiceName      string    `json:"service_name"`
	ProfessionalID   *string   `json:"professional_id,omitempty"`
	ProfessionalName *string   `json:"professional_name,omitempty"`
}

type Agenda struct {
	Period  Period        `json:"period"`
	Entries []AgendaEntry `json:"entries"`
}
