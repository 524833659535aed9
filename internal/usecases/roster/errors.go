package roster

import "errors"

var (
	ErrMissingRequiredData  = errors.New("dados obrigatórios ausentes")
	ErrInvalidFilter        = errors.New("filtro de clientes inválido")
	ErrInvalidPrice         = errors.New("preço não pode ser negativo")
	ErrInvalidDuration      = errors.New("duração deve ser maior que zero")
	ErrInvalidPeriod        = errors.New("período inválido")
	ErrClientAlreadyExists  = errors.New("cliente já cadastrado")
	ErrServiceNotFound      = errors.New("serviço não encontrado")
	ErrProfessionalNotFound = errors.New("profissional não encontrado")
	ErrAlreadyLinked        = errors.New("profissional já vinculado ao serviço")
	ErrLinkNotFound         = errors.New("vínculo não encontrado")
)
