package connecting

import (
	"errors"
	"fmt"
)

var (
	ErrCodeRequired         = errors.New("Authorization code is required")
	ErrUserIDRequired       = errors.New("User ID is required")
	ErrInvalidCode          = errors.New("Invalid authorization code format")
	ErrInvalidProvider      = errors.New("Invalid provider")
	ErrFacebookCredentials  = errors.New("Facebook app credentials not configured")
	ErrInstagramCredentials = errors.New("Instagram app credentials not configured")

	ErrFacebookToken  = errors.New("Facebook token error")
	ErrLongLivedToken = errors.New("Long-lived token error")
	ErrPagesFetch     = errors.New("Pages fetch error")
	ErrProfileFetch   = errors.New("Profile fetch error")

	ErrNoPages           = errors.New("No Facebook Pages found. Please create a Facebook Page and link it to your Instagram Business account.")
	ErrNoBusinessAccount = errors.New("No Instagram Business Account found")

	// Variante curta do fluxo provider=facebook de /instagram-oauth, que só olha a primeira página
	ErrNoPagesFound  = errors.New("No Facebook pages found")
	ErrPageNotLinked = errors.New("No Instagram business account linked to Facebook page")

	ErrSaveAccount = errors.New("Failed to save connected account")
)

// ConnectError leva o código da API. Message, quando presente, substitui o texto exposto ao cliente.
type ConnectError struct {
	Err     error
	Code    string
	Details string
	Message string
}

func (e *ConnectError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func NewConnectError(err error, code string, details string) *ConnectError {
	return &ConnectError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
