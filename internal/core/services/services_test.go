package services

import (
	"context"
	"testing"
	"time"

	"domainfolio/internal/adapters/persistence/repositories"
	"domainfolio/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db          *gorm.DB
	domains     *DomainService
	evaluations *EvaluationService
	sales       *SaleService
	settings    *SettingsService
	stats       *StatsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)

	domainRepo := repositories.NewDomainRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	evaluationRepo := repositories.NewEvaluationRepository(db)

	settings := NewSettingsService(repositories.NewSettingsRepository(db), nil)
	domains := NewDomainService(domainRepo, settings)
	domains.now = func() time.Time { return time.Date(2024, 7, 14, 10, 0, 0, 0, time.UTC) }

	return &fixture{
		db:          db,
		domains:     domains,
		evaluations: NewEvaluationService(evaluationRepo, domainRepo),
		sales:       NewSaleService(saleRepo),
		settings:    settings,
		stats:       NewStatsService(domainRepo, saleRepo, evaluationRepo),
	}
}

func ptr[T any](v T) *T { return &v }

func exampleInput() *DomainInput {
	return &DomainInput{
		Name:           "example.com",
		Registrar:      "GoDaddy",
		Category:       "Business",
		PurchaseDate:   "2024-01-01",
		ExpirationDate: "2025-01-01",
		Status:         "actif",
		PurchasePrice:  ptr(15.0),
	}
}

func mustCreate(t *testing.T, f *fixture, input *DomainInput) uint {
	t.Helper()
	created, err := f.domains.Create(context.Background(), input)
	require.NoError(t, err)
	return created.ID
}
