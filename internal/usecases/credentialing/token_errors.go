package credentialing

import (
	"errors"
	"fmt"
)

var (
	ErrUserIDRequired     = errors.New("User ID is required")
	ErrNoConnectedAccount = errors.New("No connected account found")
	ErrTokenExpired       = errors.New("Token expired. Please reconnect your account.")
)

type TokenError struct {
	Err     error
	Code    string
	Details string
}

func (e *TokenError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

func NewTokenError(err error, code string) *TokenError {
	return &TokenError{Err: err, Code: code}
}
