package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"domainfolio/internal/core/portfolio"
	"domainfolio/internal/core/services"
	"domainfolio/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DomainHandler handles domain endpoints
type DomainHandler struct {
	domainService *services.DomainService
}

// NewDomainHandler creates a new domain handler
func NewDomainHandler(domainService *services.DomainService) *DomainHandler {
	return &DomainHandler{domainService: domainService}
}

// BatchDeleteRequest represents a bulk delete
type BatchDeleteRequest struct {
	IDs []uint `json:"ids"`
}

// BatchUpdateRequest represents a bulk field update
type BatchUpdateRequest struct {
	IDs     []uint          `json:"ids"`
	Updates portfolio.Patch `json:"updates"`
}

// BatchCreateRequest represents a bulk create
type BatchCreateRequest struct {
	Domains []services.DomainInput `json:"domains"`
}

// ImportRequest holds one domain name per line
type ImportRequest struct {
	Text string `json:"text"`
}

// List handles listing all domains
// @Summary List domains
// @Description Every domain, newest first, with its sale when sold
// @Tags Domains
// @Produce json
// @Success 200 {array} models.DomainResponse
// @Failure 500 {object} response.ErrorBody
// @Router /domains [get]
func (h *DomainHandler) List(c *fiber.Ctx) error {
	list, err := h.domainService.List(c.UserContext())
	if err != nil {
		return writeError(c, err, "Failed to fetch domains")
	}
	return response.OK(c, list)
}

// Create handles creating a domain
// @Summary Create domain
// @Description Status vendu with saleDate and sellingPrice also records the sale
// @Tags Domains
// @Accept json
// @Produce json
// @Param body body services.DomainInput true "Domain"
// @Success 201 {object} models.DomainResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /domains [post]
func (h *DomainHandler) Create(c *fiber.Ctx) error {
	var input services.DomainInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.domainService.Create(c.UserContext(), &input)
	if err != nil {
		return writeError(c, err, "Failed to create domain")
	}
	return response.Created(c, created)
}

// Update handles replacing a domain
// @Summary Update domain
// @Description Replaces the domain and its sale. Unknown ids are a no-op.
// @Tags Domains
// @Accept json
// @Produce json
// @Param id path int true "Domain ID"
// @Param body body services.DomainInput true "Domain"
// @Success 200 {object} models.DomainResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /domains/{id} [put]
func (h *DomainHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return response.BadRequest(c, "Invalid domain id")
	}

	var input services.DomainInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.domainService.Update(c.UserContext(), id, &input)
	if err != nil {
		return writeError(c, err, "Failed to update domain")
	}
	return response.OK(c, updated)
}

// Delete handles deleting a domain
// @Summary Delete domain
// @Description Removes the domain, its sale and its evaluations
// @Tags Domains
// @Param id path int true "Domain ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Router /domains/{id} [delete]
func (h *DomainHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return response.BadRequest(c, "Invalid domain id")
	}

	if err := h.domainService.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, "Failed to delete domain")
	}
	return response.NoContent(c)
}

// View handles the filtered and sorted list
// @Summary Filtered and sorted domains
// @Tags Domains
// @Produce json
// @Param search query string false "Name substring"
// @Param status query string false "Status"
// @Param registrar query string false "Registrar"
// @Param category query string false "Category"
// @Param purchaseDateFrom query string false "YYYY-MM-DD"
// @Param purchaseDateTo query string false "YYYY-MM-DD"
// @Param expirationDateFrom query string false "YYYY-MM-DD"
// @Param expirationDateTo query string false "YYYY-MM-DD"
// @Param sort query string false "field:dir,field:dir"
// @Success 200 {array} models.DomainResponse
// @Failure 400 {object} response.ErrorBody
// @Router /domains/view [get]
func (h *DomainHandler) View(c *fiber.Ctx) error {
	view, err := parseView(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	list, err := h.domainService.View(c.UserContext(), view)
	if err != nil {
		return writeError(c, err, "Failed to fetch domains")
	}
	return response.OK(c, list)
}

// Export handles the CSV export
// @Summary Export domains as CSV
// @Description Same query as /domains/view; ids restricts the export to a selection
// @Tags Domains
// @Produce text/csv
// @Param ids query string false "Comma separated domain ids"
// @Param sort query string false "field:dir,field:dir"
// @Success 200 {string} string
// @Failure 400 {object} response.ErrorBody
// @Router /domains/export [get]
func (h *DomainHandler) Export(c *fiber.Ctx) error {
	view, err := parseView(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var buf bytes.Buffer
	if err := h.domainService.ExportCSV(c.UserContext(), &buf, view); err != nil {
		return writeError(c, err, "Failed to export domains")
	}

	filename := fmt.Sprintf("domains-export-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// BatchDelete handles deleting several domains
// @Summary Bulk delete
// @Description Each id is deleted independently; results are reported per id
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BatchDeleteRequest true "Ids"
// @Success 200 {object} services.BatchResult
// @Failure 400 {object} response.ErrorBody
// @Router /domains/batch/delete [post]
func (h *DomainHandler) BatchDelete(c *fiber.Ctx) error {
	var req BatchDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	plan, err := portfolio.View{}.Select(req.IDs...).PlanDelete()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.OK(c, h.domainService.BatchDelete(c.UserContext(), plan))
}

// BatchUpdate handles patching several domains
// @Summary Bulk update
// @Description Applies the same status/registrar/category patch to each id independently
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BatchUpdateRequest true "Ids and patch"
// @Success 200 {object} services.BatchResult
// @Failure 400 {object} response.ErrorBody
// @Router /domains/batch/update [post]
func (h *DomainHandler) BatchUpdate(c *fiber.Ctx) error {
	var req BatchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	plan, err := portfolio.View{}.Select(req.IDs...).PlanUpdate(req.Updates)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.domainService.BatchUpdate(c.UserContext(), plan)
	if err != nil {
		return writeError(c, err, "Failed to update domains")
	}
	return response.OK(c, result)
}

// BatchCreate handles creating several domains
// @Summary Bulk create
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BatchCreateRequest true "Domains"
// @Success 200 {object} services.BatchResult
// @Failure 400 {object} response.ErrorBody
// @Router /domains/batch/create [post]
func (h *DomainHandler) BatchCreate(c *fiber.Ctx) error {
	var req BatchCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(req.Domains) == 0 {
		return response.BadRequest(c, "domains must not be empty")
	}

	return response.OK(c, h.domainService.BatchCreate(c.UserContext(), req.Domains))
}

// Import handles the plain text import
// @Summary Import domain names
// @Description One name per line, created with default registrar, category, dates and status
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ImportRequest true "Names"
// @Success 200 {object} services.BatchResult
// @Failure 400 {object} response.ErrorBody
// @Router /domains/import [post]
func (h *DomainHandler) Import(c *fiber.Ctx) error {
	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.domainService.ImportText(c.UserContext(), req.Text)
	if err != nil {
		return writeError(c, err, "Failed to import domains")
	}
	return response.OK(c, result)
}

// parseView builds the view state from the query string
func parseView(c *fiber.Ctx) (portfolio.View, error) {
	var filter portfolio.Filter
	if err := c.QueryParser(&filter); err != nil {
		return portfolio.View{}, errors.New("invalid filter")
	}

	keys, err := portfolio.ParseSort(c.Query("sort"))
	if err != nil {
		return portfolio.View{}, err
	}

	ids, err := parseIDs(c.Query("ids"))
	if err != nil {
		return portfolio.View{}, err
	}

	return portfolio.View{Filter: filter, Sort: keys}.Select(ids...), nil
}

func parseIDs(raw string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid domain id %q", part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
