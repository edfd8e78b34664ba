package services

import (
	"context"
	"fmt"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/adapters/persistence/repositories"
)

// SaleService handles the sales listing
type SaleService struct {
	saleRepo repositories.SaleRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repositories.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// List returns every sale whose domain still exists
func (s *SaleService) List(ctx context.Context) ([]*models.SaleResponse, error) {
	rows, err := s.saleRepo.ListWithDomain(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	list := make([]*models.SaleResponse, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.ToResponse())
	}
	return list, nil
}
