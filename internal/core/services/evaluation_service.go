package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/adapters/persistence/repositories"
	"domainfolio/internal/pkg/validation"
)

// FlexID is an id sent either as a JSON number or as a numeric string ("12").
// Zero means absent.
type FlexID uint

// UnmarshalJSON accepts 12, "12" and null
func (id *FlexID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*id = 0
			return nil
		}
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("id %s is not a non-negative integer", raw)
	}
	*id = FlexID(v)
	return nil
}

// EvaluationInput represents a new valuation estimate
type EvaluationInput struct {
	DomainID       FlexID   `json:"domainId" validate:"required" swaggertype:"integer"`
	Tool           string   `json:"tool" validate:"required,max=100"`
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	EstimatedValue *float64 `json:"estimatedValue" validate:"required,gte=0"`
}

// EvaluationService handles valuation estimates
type EvaluationService struct {
	evaluationRepo repositories.EvaluationRepository
	domainRepo     repositories.DomainRepository
	validator      *validation.Validator
}

// NewEvaluationService creates a new evaluation service
func NewEvaluationService(evaluationRepo repositories.EvaluationRepository, domainRepo repositories.DomainRepository) *EvaluationService {
	return &EvaluationService{
		evaluationRepo: evaluationRepo,
		domainRepo:     domainRepo,
		validator:      validation.New(),
	}
}

// List returns every evaluation
func (s *EvaluationService) List(ctx context.Context) ([]*models.EvaluationResponse, error) {
	evaluations, err := s.evaluationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}

	list := make([]*models.EvaluationResponse, 0, len(evaluations))
	for _, e := range evaluations {
		list = append(list, e.ToResponse())
	}
	return list, nil
}

// Create stores an evaluation of an existing domain
func (s *EvaluationService) Create(ctx context.Context, input *EvaluationInput) (*models.EvaluationResponse, error) {
	input.Tool = strings.TrimSpace(input.Tool)
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	domainID := uint(input.DomainID)
	exists, err := s.domainRepo.Exists(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("check domain %d: %w", domainID, err)
	}
	if !exists {
		return nil, &validation.Error{Fields: map[string]string{
			"domainId": "does not reference an existing domain",
		}}
	}

	date, _ := models.ParseDate(input.Date)
	evaluation := &models.Evaluation{
		DomainID:       domainID,
		Tool:           input.Tool,
		Date:           date,
		EstimatedValue: *input.EstimatedValue,
	}
	if err := s.evaluationRepo.Create(ctx, evaluation); err != nil {
		return nil, fmt.Errorf("create evaluation: %w", err)
	}

	return evaluation.ToResponse(), nil
}

// Delete removes one evaluation. Unknown ids succeed.
func (s *EvaluationService) Delete(ctx context.Context, id uint) error {
	if err := s.evaluationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete evaluation %d: %w", id, err)
	}
	return nil
}
