package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Portfolio errors
var (
	ErrDuplicateDomain = errors.New("domain already exists")
	ErrDomainNotFound  = errors.New("domain not found")
)

// User errors
var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrPasswordTooShort  = errors.New("password too short")
)
