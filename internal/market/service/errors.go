package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/harvest/internal/market/domain"
)

var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrAlreadyInState     = errors.New("user already in requested status")
	ErrInvalid            = errors.New("invalid request")
)

// NotApprovedError is returned by the gate for non-admin users whose status
// is not approved. It matches ErrForbidden.
type NotApprovedError struct {
	Status domain.Status
}

func (e *NotApprovedError) Error() string {
	return fmt.Sprintf("Account is %s. Please wait for admin approval.", e.Status)
}

func (e *NotApprovedError) Is(target error) bool { return target == ErrForbidden }

// RoleRequiredError is returned by RequireRole. It matches ErrForbidden.
type RoleRequiredError struct {
	Role domain.Role
}

func (e *RoleRequiredError) Error() string {
	return fmt.Sprintf("Access denied. %s role required.", e.Role.Title())
}

func (e *RoleRequiredError) Is(target error) bool { return target == ErrForbidden }

// messageError attaches a client-facing message to one of the sentinels above.
type messageError struct {
	kind error
	msg  string
}

func (e *messageError) Error() string { return e.msg }
func (e *messageError) Unwrap() error { return e.kind }

func withMessage(kind error, format string, args ...any) error {
	return &messageError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
