package handlers

import (
	"domainfolio/internal/core/services"
	"domainfolio/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SaleHandler handles sale endpoints
type SaleHandler struct {
	saleService *services.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing sales
// @Summary List sales
// @Description Every sale with its domain name, registrar and category
// @Tags Sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SaleResponse
// @Failure 401 {object} response.ErrorBody
// @Router /sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.saleService.List(c.UserContext())
	if err != nil {
		return writeError(c, err, "Failed to fetch sales")
	}
	return response.OK(c, list)
}
