package domain

import (
	"errors"
	"fmt"
)

// Erros de validação dos filtros de consulta
var (
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("invalid sort order")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidMessage    = errors.New("invalid message")
)

// ValidationError indica que um parâmetro enviado pelo cliente não pode ser usado
type ValidationError struct {
	Err     error  // Erro base
	Field   string // Parâmetro com problema
	Details string // Mensagem para o cliente
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um novo ValidationError
func NewValidationError(err error, field string, details string) *ValidationError {
	return &ValidationError{
		Err:     err,
		Field:   field,
		Details: details,
	}
}
