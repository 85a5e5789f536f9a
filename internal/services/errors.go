package services

import "errors"

// Error classes shared by the privileged operations; handlers map them
// to HTTP statuses.
var (
	ErrUnauthorized = errors.New("missing or invalid credentials")
	ErrForbidden    = errors.New("superadmin role required")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
)

// FieldErrors carries checkout-form field errors; they never leave the
// checkout flow as anything but field-level messages.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return "invalid checkout form"
}
