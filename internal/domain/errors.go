package domain

import (
	"errors"
	"fmt"
)

// Tipos de error de dominio (sin dependencias externas).
// La capa de transporte decide cómo presentar cada tipo; el núcleo solo los devuelve.
var (
	ErrValidation = errors.New("entrada inválida")
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrConflict   = errors.New("conflicto con el estado actual")
)

// Refinamientos de ErrValidation para los casos que los llamadores suelen distinguir.
var (
	ErrInvalidRole           = fmt.Errorf("%w: rol de usuario inválido", ErrValidation)
	ErrInvalidCommissionRate = fmt.Errorf("%w: la tasa de comisión debe estar entre 0 y 1", ErrValidation)
	ErrProductUnavailable    = fmt.Errorf("%w: el producto no está disponible para la venta", ErrValidation)
)

// Error transporta el tipo (uno de los sentinels anteriores) y un mensaje legible.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

// Unwrap permite errors.Is(err, domain.ErrNotFound) y similares.
func (e *Error) Unwrap() error { return e.Kind }

// NewValidationError construye un error de tipo ErrValidation.
func NewValidationError(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError construye un error de tipo ErrNotFound.
func NewNotFoundError(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError construye un error de tipo ErrConflict.
func NewConflictError(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// IsValidation, IsNotFound e IsConflict son atajos para los adaptadores.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
