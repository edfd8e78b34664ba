package handlers

import (
	"domainfolio/internal/core/services"
	"domainfolio/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterResponse is returned by a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

// VerifyResponse echoes the claims of a valid token
type VerifyResponse struct {
	Valid bool         `json:"valid"`
	User  VerifiedUser `json:"user"`
}

type VerifiedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register handles user registration
// @Summary Register new user
// @Description Create an account. Password must be at least 6 characters.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	userID, err := h.authService.Register(c.UserContext(), &input)
	if err != nil {
		return writeError(c, err, "Failed to register user")
	}

	return response.Created(c, RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate by username or email and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} services.AuthResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.UserContext(), &input)
	if err != nil {
		return writeError(c, err, "Failed to login")
	}

	return response.OK(c, result)
}

// Verify echoes the claims of the presented token
// @Summary Verify token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	username, _ := c.Locals("username").(string)
	email, _ := c.Locals("email").(string)

	return response.OK(c, VerifyResponse{
		Valid: true,
		User: VerifiedUser{
			ID:       userID,
			Username: username,
			Email:    email,
		},
	})
}

// Logout acknowledges a logout. Tokens are stateless; the client discards it.
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return response.Ack(c, "Logged out successfully")
}
