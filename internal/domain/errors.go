package domain

import "errors"

var (
	ErrNotFound           = errors.New("registro no encontrado")
	ErrSlotTaken          = errors.New("el horario ya está reservado")
	ErrAlreadyExists      = errors.New("el registro ya existe")
	ErrServiceNotFound    = errors.New("servicio no encontrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrUnauthorized       = errors.New("token inválido")
	ErrSessionExpired     = errors.New("la sesión ha expirado")
	ErrUserInactive       = errors.New("usuario desactivado")
	ErrInvalidFile        = errors.New("archivo no permitido")
	ErrFileTooLarge       = errors.New("el archivo supera el tamaño máximo")
)

// ValidationError reports a rejected field that binding tags could not catch.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
