package repository

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoRowsAffected indica que um UPDATE ou DELETE não encontrou o registro no escopo do estabelecimento
var ErrNoRowsAffected = errors.New("nenhum registro afetado")

// ErrAlreadyExists indica violação de unicidade no INSERT
var ErrAlreadyExists = errors.New("registro já existe")

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// insertError traduz os erros do Postgres que os casos de uso tratam
func insertError(entity string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w", entity, ErrAlreadyExists)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s referencia registro inexistente: %w", entity, err)
		}
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao inserir %s: %w", entity, err)
}
