package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CatalogService struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

type CatalogProfessional struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog é o retorno de get_public_catalog
type Catalog struct {
	Services      []CatalogService      `json:"services"`
	Professionals []CatalogProfessional `json:"professionals"`
}

// BookedTimes é o retorno de get_public_availability, com horários em texto ISO 8601
type BookedTimes struct {
	Booked []string `json:"booked"`
}

type Slot struct {
	Time   string    `json:"time"` // HH:MM
	Start  time.Time `json:"start"`
	Booked bool      `json:"booked"`
}

type Availability struct {
	EstablishmentID string `json:"establishment_id"`
	ProfessionalID  string `json:"professional_id"`
	Day             string `json:"day"` // YYYY-MM-DD
	Slots           []Slot `json:"slots"`
}

type BookingRequest struct {
	EstablishmentID string  `json:"-"`
	ClientName      string  `json:"client_name"`
	Phone           string  `json:"phone"`
	ServiceID       string  `json:"service_id"`
	ProfessionalID  string  `json:"professional_id"`
	Day             string  `json:"day"`  // YYYY-MM-DD
	Slot            string  `json:"slot"` // HH:MM
	Notes           *string `json:"notes,omitempty"`
}

type BookingConfirmation struct {
	Code      string    `json:"code"`
	StartTime time.Time `json:"start_time"`
}
