package handlers

import (
	"domainfolio/internal/core/services"
	"domainfolio/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles statistics endpoints
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// ROI handles the portfolio ROI summary
// @Summary Portfolio ROI
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ROIStats
// @Failure 401 {object} response.ErrorBody
// @Router /stats/roi [get]
func (h *StatsHandler) ROI(c *fiber.Ctx) error {
	stats, err := h.statsService.GetROI(c.UserContext())
	if err != nil {
		return writeError(c, err, "Failed to compute statistics")
	}
	return response.OK(c, stats)
}
