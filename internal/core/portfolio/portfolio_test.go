package portfolio

import (
	"testing"

	"domainfolio/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func sample() []*models.DomainResponse {
	return []*models.DomainResponse{
		{ID: 1, Name: "alpha.com", Registrar: "GoDaddy", Category: "Tech", PurchaseDate: "2024-01-10", ExpirationDate: "2025-01-10", Status: "actif", PurchasePrice: price(10)},
		{ID: 2, Name: "Beta.io", Registrar: "Namecheap", Category: "Business", PurchaseDate: "2023-05-01", ExpirationDate: "2024-05-01", Status: "expire"},
		{ID: 3, Name: "gamma.net", Registrar: "GoDaddy", Category: "Business", PurchaseDate: "2024-03-15", ExpirationDate: "2026-03-15", Status: "vendu", PurchasePrice: price(50), SaleDate: "2024-06-01", SellingPrice: price(500)},
		{ID: 4, Name: "alphabet.org", Registrar: "GoDaddy", Category: "Tech", PurchaseDate: "2024-02-20", ExpirationDate: "2025-02-20", Status: "en-vente", PurchasePrice: price(10)},
	}
}

func ids(list []*models.DomainResponse) []uint {
	out := make([]uint, 0, len(list))
	for _, d := range list {
		out = append(out, d.ID)
	}
	return out
}

func TestFilter_EmptyMatchesAll(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(Filter{}.Apply(sample())))
	assert.True(t, Filter{}.IsZero())
}

func TestFilter_Fields(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []uint
	}{
		{"search is case-insensitive substring", Filter{Search: "ALPHA"}, []uint{1, 4}},
		{"status exact", Filter{Status: "vendu"}, []uint{3}},
		{"status english alias", Filter{Status: "sold"}, []uint{3}},
		{"registrar exact", Filter{Registrar: "Namecheap"}, []uint{2}},
		{"category exact", Filter{Category: "Business"}, []uint{2, 3}},
		{"purchase from inclusive", Filter{PurchaseDateFrom: "2024-02-20"}, []uint{3, 4}},
		{"purchase to inclusive", Filter{PurchaseDateTo: "2024-01-10"}, []uint{1, 2}},
		{"expiration range", Filter{ExpirationDateFrom: "2025-01-01", ExpirationDateTo: "2025-12-31"}, []uint{1, 4}},
		{"unknown status matches nothing", Filter{Status: "gone"}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(sample())))
		})
	}
}

func TestFilter_Conjunctive(t *testing.T) {
	f := Filter{Search: "alpha", Registrar: "GoDaddy", Status: "en-vente"}
	assert.Equal(t, []uint{4}, ids(f.Apply(sample())))

	for _, d := range sample() {
		want := Filter{Search: f.Search}.Match(d) &&
			Filter{Registrar: f.Registrar}.Match(d) &&
			Filter{Status: f.Status}.Match(d)
		assert.Equal(t, want, f.Match(d), d.Name)
	}
}

func TestSortKeys_ToggleCycle(t *testing.T) {
	var keys SortKeys

	keys = keys.Toggle(FieldName)
	assert.Equal(t, SortKeys{{FieldName, Asc}}, keys)

	keys = keys.Toggle(FieldStatus)
	assert.Equal(t, SortKeys{{FieldName, Asc}, {FieldStatus, Asc}}, keys)

	keys = keys.Toggle(FieldName)
	assert.Equal(t, SortKeys{{FieldName, Desc}, {FieldStatus, Asc}}, keys)

	keys = keys.Toggle(FieldName)
	assert.Equal(t, SortKeys{{FieldStatus, Asc}}, keys)
}

func TestSortKeys_ToggleDoesNotMutate(t *testing.T) {
	keys := SortKeys{{FieldName, Asc}}
	_ = keys.Toggle(FieldName)
	assert.Equal(t, Asc, keys[0].Direction)
}

func TestSortKeys_ThreeTogglesRestoreOrder(t *testing.T) {
	list := sample()
	for field := range sortableFields {
		var keys SortKeys
		keys = keys.Toggle(field).Toggle(field).Toggle(field)
		assert.Empty(t, keys, field)
		assert.Equal(t, ids(list), ids(keys.Apply(list)), field)
	}
}

func TestSortKeys_Apply(t *testing.T) {
	list := sample()

	byName := SortKeys{{FieldName, Asc}}.Apply(list)
	assert.Equal(t, []uint{1, 4, 2, 3}, ids(byName), "case-insensitive text")

	byNameDesc := SortKeys{{FieldName, Desc}}.Apply(list)
	assert.Equal(t, []uint{3, 2, 4, 1}, ids(byNameDesc))

	// missing purchase price sorts first; equal prices keep insertion order
	byPrice := SortKeys{{FieldPurchasePrice, Asc}}.Apply(list)
	assert.Equal(t, []uint{2, 1, 4, 3}, ids(byPrice))

	multi := SortKeys{{FieldRegistrar, Asc}, {FieldPurchaseDate, Desc}}.Apply(list)
	assert.Equal(t, []uint{3, 4, 1, 2}, ids(multi))

	// input untouched
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(list))
}

func TestParseSort(t *testing.T) {
	keys, err := ParseSort("registrar:asc, purchaseDate:desc,name")
	require.NoError(t, err)
	assert.Equal(t, SortKeys{{FieldRegistrar, Asc}, {FieldPurchaseDate, Desc}, {FieldName, Asc}}, keys)
	assert.Equal(t, "registrar:asc,purchaseDate:desc,name:asc", keys.String())

	keys, err = ParseSort("name:asc,name:desc")
	require.NoError(t, err)
	assert.Equal(t, SortKeys{{FieldName, Desc}}, keys)

	keys, err = ParseSort("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = ParseSort("password")
	assert.Error(t, err)

	_, err = ParseSort("name:sideways")
	assert.Error(t, err)
}

func TestView_SelectionIsImmutable(t *testing.T) {
	v := View{}
	v1 := v.Select(3, 1)
	v2 := v1.Deselect(3)

	assert.Equal(t, 0, v.Selection.Len())
	assert.Equal(t, []uint{1, 3}, v1.Selection.IDs())
	assert.Equal(t, []uint{1}, v2.Selection.IDs())
	assert.Equal(t, 0, v2.ClearSelection().Selection.Len())
}

func TestView_SelectAllUsesFilter(t *testing.T) {
	v := View{}.WithFilter(Filter{Registrar: "GoDaddy"}).SelectAll(sample())
	assert.Equal(t, []uint{1, 3, 4}, v.Selection.IDs())

	v = v.ToggleSort(FieldName)
	assert.Equal(t, []uint{1, 4, 3}, ids(v.Selected(sample())))
}

func TestView_Plans(t *testing.T) {
	_, err := View{}.PlanDelete()
	assert.ErrorIs(t, err, ErrEmptySelection)

	v := View{}.Select(4, 2)
	del, err := v.PlanDelete()
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 4}, del.IDs)

	_, err = v.PlanUpdate(Patch{})
	assert.ErrorIs(t, err, ErrEmptyPatch)

	status := "vendu"
	upd, err := v.PlanUpdate(Patch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 4}, upd.IDs)
	assert.Equal(t, "vendu", *upd.Patch.Status)
}
