package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary. Anything
// not in this list is treated as a store failure: logged in full, returned to
// the client as a generic 500.
var (
	// ErrInvalidCredentials deliberately covers both an unknown username and a
	// wrong password so responses cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDeactivated = errors.New("user account is deactivated")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrNotFound           = errors.New("not found")
	ErrUnknownEmployee    = errors.New("invalid employee ID")
	ErrInvalidHours       = errors.New("hours must be a decimal number between 0 and 24")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format and not in the past")
)
