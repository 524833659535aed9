package booking

import "errors"

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidDay          = errors.New("data inválida, use o formato YYYY-MM-DD")
	ErrInvalidSlot         = errors.New("horário fora da grade de atendimento")
	ErrSlotUnavailable     = errors.New("horário já reservado")
	ErrPastSlot            = errors.New("horário já passou")
	ErrBookingRejected     = errors.New("agendamento não confirmado")
)
