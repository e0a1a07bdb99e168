package apperrors

import "net/http"

// Predeclared domain errors and factories shared across services.

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrConflict converts a uniqueness violation into a 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

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

var ErrRefreshTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Refresh token has expired. Please sign in again",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

var ErrTeacherIDAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Teacher ID already in use",
	http.StatusConflict,
)

var ErrRegisterNumberAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Register number already in use",
	http.StatusConflict,
)

// ErrCollegeAdminExists rejects a second admin registration for one college.
var ErrCollegeAdminExists = New(
	CodeConflict,
	"auth",
	"An admin already exists for this college",
	http.StatusConflict,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"validation",
	"Invalid user role",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be 8-30 characters and contain a lowercase letter, an uppercase letter, a digit, one of @#$%^&+=! and no whitespace",
	http.StatusBadRequest,
)

var ErrTooManyLoginAttempts = New(
	CodeLimitExceeded,
	"auth",
	"Too many failed login attempts. Try again later",
	http.StatusTooManyRequests,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
