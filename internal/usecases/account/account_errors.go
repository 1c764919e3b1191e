package account

import (
	"errors"
	"fmt"
)

// Erros específicos do catálogo e das seleções de contas
var (
	ErrNoConnection    = errors.New("tenant sem conexão ativa com o provedor")
	ErrMetaIntegration = errors.New("erro ao consultar o catálogo na Meta")
	ErrSaveSelection   = errors.New("erro ao salvar seleção")
	ErrGenerateID      = errors.New("erro ao gerar ID")
)

// AccountError é um erro com contexto adicional para o catálogo de contas
type AccountError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
