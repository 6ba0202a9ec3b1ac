// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthenticated signals a missing, malformed or rejected bearer credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals a caller without the admin role.
	ErrForbidden = errors.New("admin access required")
	// ErrDownstream signals a failure reported by the store or the auth provider.
	ErrDownstream = errors.New("downstream failure")
	// ErrAccountNotFound is returned when an account does not exist.
	ErrAccountNotFound = errors.New("user not found")
	// ErrAccountExists signals an email already registered.
	ErrAccountExists = errors.New("a user with this email address has already been registered")
	// ErrRoleNotFound is returned when an account has no role assignment.
	ErrRoleNotFound = errors.New("role not found")
	// ErrProfileNotFound is returned when no profile matched an update.
	ErrProfileNotFound = errors.New("profile not found")
)
