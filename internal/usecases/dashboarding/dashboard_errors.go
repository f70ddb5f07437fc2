package dashboarding

import (
	"errors"
	"fmt"
)

var ErrMissingCredentials = errors.New("Missing IG_BUSINESS_ID / IG_ACCESS_TOKEN secrets")

// DashboardError carrega o código da API; a mensagem exposta é a do erro base
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
