package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"domainfolio/internal/core/domain"
	"domainfolio/internal/core/portfolio"
	"domainfolio/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.domains.Create(ctx, exampleInput())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "example.com", created.Name)
	require.NotNil(t, created.PurchasePrice)
	assert.Equal(t, 15.0, *created.PurchasePrice)
	assert.Empty(t, created.SaleDate)

	_, err = f.domains.Create(ctx, exampleInput())
	assert.ErrorIs(t, err, domain.ErrDuplicateDomain)

	list, err := f.domains.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDomainService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input func(*DomainInput)
		field string
	}{
		{"missing name", func(in *DomainInput) { in.Name = "  " }, "name"},
		{"bad date", func(in *DomainInput) { in.PurchaseDate = "01/02/2024" }, "purchaseDate"},
		{"negative price", func(in *DomainInput) { in.PurchasePrice = ptr(-1.0) }, "purchasePrice"},
		{"unknown status", func(in *DomainInput) { in.Status = "lost" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := exampleInput()
			tt.input(input)

			_, err := f.domains.Create(ctx, input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestDomainService_EnglishStatusIsNormalized(t *testing.T) {
	f := newFixture(t)

	input := exampleInput()
	input.Status = "for-sale"
	created, err := f.domains.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "en-vente", created.Status)
}

func TestDomainService_SoldIffSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := mustCreate(t, f, exampleInput())

	sold := exampleInput()
	sold.Status = "vendu"
	sold.SaleDate = "2024-06-01"
	sold.SellingPrice = ptr(500.0)
	sold.Buyer = ptr("Alice")

	updated, err := f.domains.Update(ctx, id, sold)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", updated.SaleDate)

	sales, err := f.sales.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "example.com", sales[0].DomainName)
	assert.Equal(t, 500.0, sales[0].SellingPrice)
	require.NotNil(t, sales[0].Buyer)
	assert.Equal(t, "Alice", *sales[0].Buyer)

	// sold without a price records no sale
	noPrice := exampleInput()
	noPrice.Status = "vendu"
	noPrice.SaleDate = "2024-06-01"
	_, err = f.domains.Update(ctx, id, noPrice)
	require.NoError(t, err)
	sales, err = f.sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)

	// sale fields on a non-sold status are ignored
	active := exampleInput()
	active.SaleDate = "2024-06-01"
	active.SellingPrice = ptr(500.0)
	_, err = f.domains.Update(ctx, id, active)
	require.NoError(t, err)
	sales, err = f.sales.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestDomainService_UpdateUnknownIDEchoes(t *testing.T) {
	f := newFixture(t)

	resp, err := f.domains.Update(context.Background(), 404, exampleInput())
	require.NoError(t, err)
	assert.Equal(t, uint(404), resp.ID)
	assert.Equal(t, "example.com", resp.Name)

	list, err := f.domains.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDomainService_ViewAndExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mustCreate(t, f, exampleInput())
	other := exampleInput()
	other.Name = "alpha.io"
	other.Registrar = "Namecheap"
	other.PurchasePrice = nil
	mustCreate(t, f, other)

	keys, err := portfolio.ParseSort("name:asc")
	require.NoError(t, err)
	view := portfolio.View{Sort: keys}

	list, err := f.domains.View(ctx, view)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha.io", list[0].Name)

	list, err = f.domains.View(ctx, view.WithFilter(portfolio.Filter{Registrar: "GoDaddy"}))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "example.com", list[0].Name)

	var buf bytes.Buffer
	require.NoError(t, f.domains.ExportCSV(ctx, &buf, view))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Name", records[0][0])
	assert.Equal(t, []string{"alpha.io", "Namecheap", "Business", "2024-01-01", "2025-01-01", "actif", "0", "0", "", ""}, records[1])
	assert.Equal(t, "15", records[2][6])
}

func TestDomainService_ExportSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mustCreate(t, f, exampleInput())
	other := exampleInput()
	other.Name = "picked.com"
	picked := mustCreate(t, f, other)

	var buf bytes.Buffer
	require.NoError(t, f.domains.ExportCSV(ctx, &buf, portfolio.View{}.Select(picked)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "picked.com", records[1][0])
}

func TestDomainService_ExportNeutralizesFormulas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	input := exampleInput()
	input.Name = "@sum.com"
	input.Registrar = "+Registrar"
	input.Category = "-1"
	input.Status = "vendu"
	input.SaleDate = "2024-06-01"
	input.SellingPrice = ptr(80.0)
	input.Buyer = ptr(`=HYPERLINK("http://evil.test","x")`)
	mustCreate(t, f, input)

	var buf bytes.Buffer
	require.NoError(t, f.domains.ExportCSV(ctx, &buf, portfolio.View{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "'@sum.com", row[0])
	assert.Equal(t, "'+Registrar", row[1])
	assert.Equal(t, "'-1", row[2])
	assert.Equal(t, `'=HYPERLINK("http://evil.test","x")`, row[9])
	assert.Equal(t, "80", row[7])
}

func TestCSVText(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"example.com":     "example.com",
		"=1+1":            "'=1+1",
		"+33 6 00":        "'+33 6 00",
		"-5":              "'-5",
		"@SUM(A1)":        "'@SUM(A1)",
		"\tcmd":           "'\tcmd",
		"a=b":             "a=b",
		"Jean-Luc Picard": "Jean-Luc Picard",
	}
	for in, want := range tests {
		assert.Equal(t, want, csvText(in), "%q", in)
	}
}
