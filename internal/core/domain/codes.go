package domain

import "errors"

// Machine-readable error codes returned to API clients
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeDuplicateDomain = "DUPLICATE_DOMAIN"
	CodeUserExists      = "USER_EXISTS"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_ERROR"
)

// ErrorCode classifies err for clients. Unknown errors are internal.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPasswordTooShort):
		return CodeValidation
	case errors.Is(err, ErrDuplicateDomain):
		return CodeDuplicateDomain
	case errors.Is(err, ErrUserAlreadyExists):
		return CodeUserExists
	case errors.Is(err, ErrDomainNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return CodeUnauthorized
	case errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenInvalid):
		return CodeForbidden
	default:
		return CodeInternal
	}
}
