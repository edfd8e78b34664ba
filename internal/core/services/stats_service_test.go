package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetROI(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stats, err := f.stats.GetROI(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.DomainCount)
	assert.Equal(t, 0.0, stats.ROI)
	assert.Equal(t, int64(0), stats.StatusCounts["vendu"])

	a := exampleInput()
	a.PurchasePrice = ptr(100.0)
	a.Status = "vendu"
	a.SaleDate = "2024-06-01"
	a.SellingPrice = ptr(400.0)
	aID := mustCreate(t, f, a)

	b := exampleInput()
	b.Name = "b.com"
	b.PurchasePrice = ptr(100.0)
	bID := mustCreate(t, f, b)

	c := exampleInput()
	c.Name = "c.com"
	c.PurchasePrice = nil
	c.Status = "expire"
	mustCreate(t, f, c)

	for _, e := range []EvaluationInput{
		{DomainID: FlexID(aID), Tool: "Estibot", Date: "2024-01-01", EstimatedValue: ptr(50.0)},
		{DomainID: FlexID(aID), Tool: "Sedo", Date: "2024-03-01", EstimatedValue: ptr(300.0)},
		{DomainID: FlexID(bID), Tool: "Sedo", Date: "2024-02-01", EstimatedValue: ptr(20.0)},
	} {
		e := e
		_, err := f.evaluations.Create(ctx, &e)
		require.NoError(t, err)
	}

	stats, err = f.stats.GetROI(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.DomainCount)
	assert.Equal(t, 200.0, stats.TotalPurchased)
	assert.Equal(t, 400.0, stats.TotalSold)
	assert.Equal(t, 200.0, stats.Profit)
	assert.Equal(t, 100.0, stats.ROI)
	assert.InDelta(t, 66.67, stats.AveragePurchasePrice, 0.01)
	assert.Equal(t, map[string]int64{"actif": 1, "vendu": 1, "expire": 1, "en-vente": 0}, stats.StatusCounts)
	assert.Equal(t, 3, stats.EvaluationCount)
	assert.Equal(t, 320.0, stats.LatestEvaluationTotal)
}
