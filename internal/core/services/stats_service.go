package services

import (
	"context"
	"fmt"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/adapters/persistence/repositories"
	"domainfolio/internal/core/domain"
)

// StatsService computes portfolio statistics
type StatsService struct {
	domainRepo     repositories.DomainRepository
	saleRepo       repositories.SaleRepository
	evaluationRepo repositories.EvaluationRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	domainRepo repositories.DomainRepository,
	saleRepo repositories.SaleRepository,
	evaluationRepo repositories.EvaluationRepository,
) *StatsService {
	return &StatsService{
		domainRepo:     domainRepo,
		saleRepo:       saleRepo,
		evaluationRepo: evaluationRepo,
	}
}

// ROIStats represents the portfolio return on investment
type ROIStats struct {
	DomainCount           int              `json:"domainCount"`
	TotalPurchased        float64          `json:"totalPurchased"`
	TotalSold             float64          `json:"totalSold"`
	Profit                float64          `json:"profit"`
	ROI                   float64          `json:"roi"`
	AveragePurchasePrice  float64          `json:"averagePurchasePrice"`
	StatusCounts          map[string]int64 `json:"statusCounts"`
	EvaluationCount       int              `json:"evaluationCount"`
	LatestEvaluationTotal float64          `json:"latestEvaluationTotal"`
}

// GetROI returns the statistics over every domain, sale and evaluation
func (s *StatsService) GetROI(ctx context.Context) (*ROIStats, error) {
	domains, err := s.domainRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	sales, err := s.saleRepo.ListWithDomain(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	evaluations, err := s.evaluationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}

	return computeROI(domains, sales, evaluations), nil
}

func computeROI(domains []*models.Domain, sales []*models.SaleRow, evaluations []*models.Evaluation) *ROIStats {
	stats := &ROIStats{
		DomainCount:     len(domains),
		StatusCounts:    make(map[string]int64, len(domain.Statuses)),
		EvaluationCount: len(evaluations),
	}
	for _, status := range domain.Statuses {
		stats.StatusCounts[string(status)] = 0
	}

	for _, d := range domains {
		if d.PurchasePrice != nil {
			stats.TotalPurchased += *d.PurchasePrice
		}
		stats.StatusCounts[d.Status]++
	}

	for _, sale := range sales {
		stats.TotalSold += sale.SellingPrice
	}

	stats.Profit = stats.TotalSold - stats.TotalPurchased
	if stats.TotalPurchased > 0 {
		stats.ROI = stats.Profit / stats.TotalPurchased * 100
	}
	if stats.DomainCount > 0 {
		stats.AveragePurchasePrice = stats.TotalPurchased / float64(stats.DomainCount)
	}

	// most recent evaluation per domain; later ids win date ties
	latest := make(map[uint]*models.Evaluation)
	for _, e := range evaluations {
		cur, ok := latest[e.DomainID]
		if !ok || e.Date.After(cur.Date) || (e.Date.Equal(cur.Date) && e.ID > cur.ID) {
			latest[e.DomainID] = e
		}
	}
	for _, e := range latest {
		stats.LatestEvaluationTotal += e.EstimatedValue
	}

	return stats
}
