package services

import (
	"context"
	"fmt"
	"strings"

	"domainfolio/internal/core/domain"
	"domainfolio/internal/core/portfolio"
	"domainfolio/internal/pkg/metrics"
	"domainfolio/internal/pkg/validation"

	"github.com/rs/zerolog/log"
)

// BatchItemResult reports the outcome of one batch item
type BatchItemResult struct {
	ID      uint   `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// BatchResult reports every item of a batch in request order
type BatchResult struct {
	Results   []BatchItemResult `json:"results"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
}

func newBatchResult(size int) *BatchResult {
	return &BatchResult{Results: make([]BatchItemResult, 0, size)}
}

func (r *BatchResult) add(op string, item BatchItemResult, err error) {
	if err != nil {
		item.Success = false
		item.Error = domain.ErrorCode(err)
		item.Message = itemMessage(err)
		r.Failed++
	} else {
		item.Success = true
		r.Succeeded++
	}
	metrics.BatchItems.WithLabelValues(op, metrics.Result(err)).Inc()
	r.Results = append(r.Results, item)
}

// itemMessage hides infrastructure causes from clients
func itemMessage(err error) string {
	if domain.ErrorCode(err) == domain.CodeInternal {
		log.Error().Err(err).Msg("batch item failed")
		return "internal error"
	}
	return err.Error()
}

// BatchDelete deletes every planned id independently
func (s *DomainService) BatchDelete(ctx context.Context, plan portfolio.DeletePlan) *BatchResult {
	result := newBatchResult(len(plan.IDs))
	for _, id := range plan.IDs {
		err := s.Delete(ctx, id)
		result.add("delete", BatchItemResult{ID: id}, err)
	}
	return result
}

// BatchUpdate applies the planned patch to every id independently. A sale
// is kept while the domain stays sold and dropped otherwise.
func (s *DomainService) BatchUpdate(ctx context.Context, plan portfolio.UpdatePlan) (*BatchResult, error) {
	if plan.Patch.Status != nil {
		if _, ok := domain.ParseStatus(*plan.Patch.Status); !ok {
			return nil, &validation.Error{Fields: map[string]string{
				"updates.status": "must be one of: actif vendu expire en-vente",
			}}
		}
	}

	result := newBatchResult(len(plan.IDs))
	for _, id := range plan.IDs {
		name, err := s.patch(ctx, id, plan.Patch)
		result.add("update", BatchItemResult{ID: id, Name: name}, err)
	}
	return result, nil
}

func (s *DomainService) patch(ctx context.Context, id uint, p portfolio.Patch) (string, error) {
	d, err := s.domainRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%w: %d", domain.ErrDomainNotFound, id)
		}
		return "", err
	}

	input := inputFromModel(d)
	if p.Status != nil {
		input.Status = *p.Status
	}
	if p.Registrar != nil {
		input.Registrar = *p.Registrar
	}
	if p.Category != nil {
		input.Category = *p.Category
	}

	resp, err := s.Update(ctx, id, input)
	if err != nil {
		return d.Name, err
	}
	return resp.Name, nil
}

// BatchCreate creates every input independently. A name repeated inside
// the batch fails from its second occurrence on.
func (s *DomainService) BatchCreate(ctx context.Context, inputs []DomainInput) *BatchResult {
	result := newBatchResult(len(inputs))
	seen := make(map[string]struct{}, len(inputs))

	for i := range inputs {
		input := &inputs[i]
		name := strings.TrimSpace(input.Name)

		if _, dup := seen[name]; dup && name != "" {
			err := fmt.Errorf("%w: %s is repeated in the batch", domain.ErrDuplicateDomain, name)
			result.add("create", BatchItemResult{Name: name}, err)
			continue
		}
		seen[name] = struct{}{}

		created, err := s.Create(ctx, input)
		item := BatchItemResult{Name: name}
		if created != nil {
			item.ID = created.ID
		}
		result.add("create", item, err)
	}
	return result
}

// ImportText creates one domain per non-blank line of text. Imported
// domains use the first configured registrar and category, today's date,
// a one year term, the active status and a zero price.
func (s *DomainService) ImportText(ctx context.Context, text string) (*BatchResult, error) {
	lists, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	defaults := domain.DefaultCustomLists()
	registrar := firstOr(lists.Registrars, defaults.Registrars[0])
	category := firstOr(lists.Categories, defaults.Categories[0])

	today := s.now().UTC()
	purchaseDate := today.Format("2006-01-02")
	expirationDate := today.AddDate(1, 0, 0).Format("2006-01-02")

	var inputs []DomainInput
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		zero := 0.0
		inputs = append(inputs, DomainInput{
			Name:           name,
			Registrar:      registrar,
			Category:       category,
			PurchaseDate:   purchaseDate,
			ExpirationDate: expirationDate,
			Status:         string(domain.StatusActive),
			PurchasePrice:  &zero,
		})
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no domain name in import text", domain.ErrInvalidInput)
	}
	return s.BatchCreate(ctx, inputs), nil
}

func firstOr(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}
