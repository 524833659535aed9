package metrics

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailure é o sinal único de falha de uma faceta: qualquer leitura com erro aborta o cálculo
	ErrFetchFailure = errors.New("falha ao carregar dados para as métricas")

	ErrInvalidPeriod        = errors.New("período inválido")
	ErrMissingEstablishment = errors.New("estabelecimento não informado")
)

// FetchError identifica a faceta cuja leitura falhou
type FetchError struct {
	Facet string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: faceta %s: %v", ErrFetchFailure.Error(), e.Facet, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is faz com que errors.Is(err, ErrFetchFailure) seja verdadeiro para qualquer FetchError
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailure
}

func newFetchError(facet string, err error) error {
	return &FetchError{Facet: facet, Err: err}
}
