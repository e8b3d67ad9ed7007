package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	// ErrInvalidCredentials covers wrong password, unknown email AND inactive
	// accounts. Callers must not be able to tell which one happened; the
	// distinction lives only in server-side logs and the audit trail.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
