package response

import (
	"domainfolio/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned in the error body
const (
	CodeValidation      = domain.CodeValidation
	CodeDuplicateDomain = domain.CodeDuplicateDomain
	CodeUserExists      = domain.CodeUserExists
	CodeUnauthorized    = domain.CodeUnauthorized
	CodeForbidden       = domain.CodeForbidden
	CodeNotFound        = domain.CodeNotFound
	CodeTooManyRequests = domain.CodeTooManyRequests
	CodeInternal        = domain.CodeInternal
)

// ErrorBody represents every non-2xx API response
type ErrorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Message is a bare acknowledgment body
type Message struct {
	Message string `json:"message"`
}

// OK sends a 200 response with data as the body
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// NoContent sends a 204 response without body
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Ack sends a 200 acknowledgment
func Ack(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(Message{Message: message})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, code, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Error:   code,
		Message: message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, CodeValidation, message)
}

// ValidationFailed sends a 400 response listing the offending fields
func ValidationFailed(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{
		Error:   CodeValidation,
		Message: message,
		Fields:  fields,
	})
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, CodeForbidden, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, code, message string) error {
	return Error(c, fiber.StatusConflict, code, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, CodeInternal, message)
}
