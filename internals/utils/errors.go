package utils

import "errors"

// Sentinel errors for the auth subsystem. Controllers translate these to
// HTTP statuses; token errors are never surfaced to the user as distinct
// codes, they just trigger re-authentication.
var (
	ErrValidation         = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrOtpNotRequested = errors.New("no verification code requested")
	ErrOtpExpired      = errors.New("verification code expired")
	ErrOtpMismatch     = errors.New("verification code mismatch")

	ErrBadSignature = errors.New("token signature invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrEpochStale   = errors.New("token epoch stale")
)
