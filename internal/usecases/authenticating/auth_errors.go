package authenticating

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized é a única mensagem exposta ao cliente; o detalhe fica no log
	ErrUnauthorized = errors.New("Unauthorized")

	ErrInvalidToken       = errors.New("token de sessão inválido")
	ErrExpiredToken       = errors.New("token de sessão expirado")
	ErrMissingSubject     = errors.New("token de sessão sem sub")
	ErrSecretNotConfigure = errors.New("SUPABASE_JWT_SECRET não configurado")
)

// AuthError carrega o motivo real da recusa, mas sempre se apresenta como ErrUnauthorized via Is
type AuthError struct {
	Err     error
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

func NewAuthError(baseErr error, details string) *AuthError {
	return &AuthError{Err: baseErr, Details: details}
}
