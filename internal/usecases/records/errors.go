package records

import "errors"

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidAmount       = errors.New("valor deve ser maior que zero")
	ErrInvalidMonth        = errors.New("mês deve estar entre 1 e 12")
	ErrInvalidYear         = errors.New("ano inválido")
	ErrInvalidTarget       = errors.New("meta não pode ser negativa")
	ErrInvalidThreshold    = errors.New("limite de inatividade deve ser de pelo menos 1 dia")
	ErrClientNotFound      = errors.New("cliente não encontrado")
	ErrServiceNotFound     = errors.New("serviço não encontrado")
)
