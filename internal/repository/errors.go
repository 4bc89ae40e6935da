// Package repository holds the in-memory data stores of the service and
// the sentinel errors shared across them.  Handlers translate these
// sentinels into HTTP responses: ErrValidation becomes 400,
// ErrInvalidCredentials becomes 401, ErrNotFound becomes 404.
package repository

import "errors"

// ErrValidation is returned when a mutating operation receives missing
// or malformed input.  Validation always happens before any write, so a
// failed operation leaves the store untouched.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials is returned by Authenticate when no account
// matches the email/password pair.  It carries no further detail.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound is returned by lookups on unknown identifiers.  Cancel
// and remove treat an unknown id as a silent no-op instead.
var ErrNotFound = errors.New("not found")
