package handlers

import (
	"errors"

	"domainfolio/internal/core/domain"
	"domainfolio/internal/pkg/response"
	"domainfolio/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// writeError maps a service error to its API response. Unknown errors are
// logged and answered with fallback, never with their cause.
func writeError(c *fiber.Ctx, err error, fallback string) error {
	var verr *validation.Error

	switch {
	case errors.As(err, &verr):
		return response.ValidationFailed(c, "Validation failed", verr.Fields)
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrPasswordTooShort):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrDuplicateDomain):
		return response.Conflict(c, response.CodeDuplicateDomain, "A domain with this name already exists")
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return response.Conflict(c, response.CodeUserExists, "Username or email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, "Invalid credentials")
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Interface("request_id", c.Locals("requestid")).
			Msg(fallback)
		return response.InternalServerError(c, fallback)
	}
}

// paramID parses the :id route parameter
func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
