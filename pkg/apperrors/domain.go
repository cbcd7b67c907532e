package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email already exists",
	http.StatusConflict,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Vendors ---

var ErrVendorNotFound = New(
	CodeNotFound,
	"vendor",
	"Vendor not found",
	http.StatusNotFound,
)

// ErrVerificationTransition rejects moves the verification state machine
// does not allow (APPROVED and REJECTED are terminal).
func ErrVerificationTransition(from, to string) *AppError {
	return New(
		CodeInvalidStatus,
		"verification",
		"Verification transition from "+from+" to "+to+" is not allowed",
		http.StatusConflict,
	)
}

// --- Quotes ---

var ErrQuoteNotFound = New(
	CodeNotFound,
	"quote",
	"Quote request not found",
	http.StatusNotFound,
)

// ErrQuoteAlreadyResponded pins the double-respond behavior: a quote
// request accepts exactly one vendor response.
var ErrQuoteAlreadyResponded = New(
	CodeConflict,
	"quote",
	"Quote request has already been responded to",
	http.StatusConflict,
)

// --- Reviews ---

var ErrReviewNotFound = New(
	CodeNotFound,
	"review",
	"Review not found",
	http.StatusNotFound,
)

var ErrInvalidReviewRating = New(
	CodeValidationFailed,
	"review",
	"Rating must be between 1 and 5",
	http.StatusBadRequest,
)
