package services

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses;
// anything else is treated as a persistence failure and surfaced as a 500.
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrCancelNotAllowed   = errors.New("order can no longer be cancelled")
	ErrDateEditNotAllowed = errors.New("order date can only be edited while processing, shipped or delivered")
	ErrInvalidInput       = errors.New("missing or invalid required field")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidPin         = errors.New("invalid pin")
)
