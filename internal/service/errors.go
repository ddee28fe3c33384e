package service

import "errors"

// Sentinel errors returned by the workflow layer. Handlers translate these
// into status codes and user-visible messages.
var (
	// ErrNotFound covers both a missing record and an owner mismatch, so an
	// existing record owned by someone else is indistinguishable from one
	// that never existed.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTransactionRefSet is returned when an admin tries to overwrite a
	// previously set fee transaction reference.
	ErrTransactionRefSet = errors.New("transaction reference already set")

	// ErrInvalidStatus is returned for a status value outside the entity's
	// allowed set.
	ErrInvalidStatus = errors.New("invalid status")
)
