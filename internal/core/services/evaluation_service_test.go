package services

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"domainfolio/internal/core/domain"
	"domainfolio/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	domainID := mustCreate(t, f, exampleInput())

	created, err := f.evaluations.Create(ctx, &EvaluationInput{
		DomainID:       FlexID(domainID),
		Tool:           " Estibot ",
		Date:           "2024-02-01",
		EstimatedValue: ptr(0.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Estibot", created.Tool)
	assert.Equal(t, "2024-02-01", created.Date)

	list, err := f.evaluations.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.evaluations.Delete(ctx, created.ID))
	require.NoError(t, f.evaluations.Delete(ctx, created.ID))

	list, err = f.evaluations.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEvaluationService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.evaluations.Create(ctx, &EvaluationInput{DomainID: 1, Tool: "Sedo", Date: "2024-02-01"})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "estimatedValue")

	_, err = f.evaluations.Create(ctx, &EvaluationInput{DomainID: 99, Tool: "Sedo", Date: "2024-02-01", EstimatedValue: ptr(5.0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "domainId")
}

func TestEvaluationsRemovedWithDomain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	domainID := mustCreate(t, f, exampleInput())
	_, err := f.evaluations.Create(ctx, &EvaluationInput{DomainID: FlexID(domainID), Tool: "Sedo", Date: "2024-02-01", EstimatedValue: ptr(5.0)})
	require.NoError(t, err)

	require.NoError(t, f.domains.Delete(ctx, domainID))
	require.NoError(t, f.domains.Delete(ctx, domainID))

	list, err := f.evaluations.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFlexID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw     string
		want    FlexID
		wantErr bool
	}{
		{`12`, 12, false},
		{`"12"`, 12, false},
		{`" 7 "`, 7, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
		{`-3`, 0, true},
		{`"1.5"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var input EvaluationInput
			err := json.Unmarshal([]byte(`{"domainId":`+tt.raw+`}`), &input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, input.DomainID)
		})
	}
}

func TestEvaluationService_StringDomainID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	domainID := mustCreate(t, f, exampleInput())

	var input EvaluationInput
	body := `{"domainId":"` + strconv.FormatUint(uint64(domainID), 10) + `","tool":"Sedo","date":"2024-02-01","estimatedValue":40}`
	require.NoError(t, json.Unmarshal([]byte(body), &input))

	created, err := f.evaluations.Create(ctx, &input)
	require.NoError(t, err)
	assert.Equal(t, domainID, created.DomainID)

	var missing EvaluationInput
	require.NoError(t, json.Unmarshal([]byte(`{"domainId":"","tool":"Sedo","date":"2024-02-01","estimatedValue":40}`), &missing))
	_, err = f.evaluations.Create(ctx, &missing)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "domainId")
}
