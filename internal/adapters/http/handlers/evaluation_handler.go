package handlers

import (
	"domainfolio/internal/core/services"
	"domainfolio/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EvaluationHandler handles evaluation endpoints
type EvaluationHandler struct {
	evaluationService *services.EvaluationService
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evaluationService *services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

// List handles listing evaluations
// @Summary List evaluations
// @Tags Evaluations
// @Produce json
// @Success 200 {array} models.EvaluationResponse
// @Router /evaluations [get]
func (h *EvaluationHandler) List(c *fiber.Ctx) error {
	list, err := h.evaluationService.List(c.UserContext())
	if err != nil {
		return writeError(c, err, "Failed to fetch evaluations")
	}
	return response.OK(c, list)
}

// Create handles recording an evaluation
// @Summary Create evaluation
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param body body services.EvaluationInput true "Evaluation"
// @Success 201 {object} models.EvaluationResponse
// @Failure 400 {object} response.ErrorBody
// @Router /evaluations [post]
func (h *EvaluationHandler) Create(c *fiber.Ctx) error {
	var input services.EvaluationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.evaluationService.Create(c.UserContext(), &input)
	if err != nil {
		return writeError(c, err, "Failed to create evaluation")
	}
	return response.Created(c, created)
}

// Delete handles deleting an evaluation
// @Summary Delete evaluation
// @Tags Evaluations
// @Param id path int true "Evaluation ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Router /evaluations/{id} [delete]
func (h *EvaluationHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return response.BadRequest(c, "Invalid evaluation id")
	}

	if err := h.evaluationService.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, "Failed to delete evaluation")
	}
	return response.NoContent(c)
}
