package apperrors

import (
	"net/http"
)

// Predefined domain errors for the registration and login flows.

// ErrEmailAlreadyExists - signup with an email that is already registered.
// The API contract returns 400 for this, not 409.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"Email is already registered",
	http.StatusBadRequest,
)

// ErrInvalidPhone - national phone segment is not exactly 10 digits.
var ErrInvalidPhone = New(
	CodeValidationFailed,
	"user",
	"Invalid phone number: national part must be exactly 10 digits",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - unknown email OR wrong password. One message for
// both so the response never confirms whether the account exists.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"invalid email or password",
	http.StatusBadRequest,
)

// ErrInvalidToken - malformed, tampered or expired bearer token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUnsafeFilename - résumé upload with path separators or traversal
// sequences in the original filename.
var ErrUnsafeFilename = New(
	CodeValidationFailed,
	"upload",
	"Invalid file name",
	http.StatusBadRequest,
)

// NotFound wraps a repository miss for resources addressed directly.
func NotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}
