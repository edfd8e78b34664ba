package handlers

import (
	"domainfolio/internal/core/domain"
	"domainfolio/internal/core/services"
	"domainfolio/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles the custom lists document
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles reading the custom lists
// @Summary Get custom lists
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.CustomLists
// @Failure 401 {object} response.ErrorBody
// @Router /settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	lists, err := h.settingsService.Get(c.UserContext())
	if err != nil {
		return writeError(c, err, "Failed to fetch settings")
	}
	return response.OK(c, lists)
}

// Update handles replacing the custom lists
// @Summary Replace custom lists
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.CustomLists true "Custom lists"
// @Success 200 {object} domain.CustomLists
// @Failure 400 {object} response.ErrorBody
// @Router /settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var input domain.CustomLists
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	lists, err := h.settingsService.Update(c.UserContext(), input)
	if err != nil {
		return writeError(c, err, "Failed to save settings")
	}
	return response.OK(c, lists)
}
