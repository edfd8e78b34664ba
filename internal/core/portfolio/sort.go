package portfolio

import (
	"fmt"
	"sort"
	"strings"

	"domainfolio/internal/adapters/persistence/models"
)

// Field names a sortable column, using its JSON name
type Field string

const (
	FieldName           Field = "name"
	FieldRegistrar      Field = "registrar"
	FieldCategory       Field = "category"
	FieldPurchaseDate   Field = "purchaseDate"
	FieldExpirationDate Field = "expirationDate"
	FieldStatus         Field = "status"
	FieldPurchasePrice  Field = "purchasePrice"
	FieldSellingPrice   Field = "sellingPrice"
	FieldSaleDate       Field = "saleDate"
)

var sortableFields = map[Field]bool{
	FieldName:           true,
	FieldRegistrar:      true,
	FieldCategory:       true,
	FieldPurchaseDate:   true,
	FieldExpirationDate: true,
	FieldStatus:         true,
	FieldPurchasePrice:  true,
	FieldSellingPrice:   true,
	FieldSaleDate:       true,
}

// Valid reports whether f can be sorted on
func (f Field) Valid() bool {
	return sortableFields[f]
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type SortKey struct {
	Field     Field     `json:"field"`
	Direction Direction `json:"direction"`
}

// SortKeys is an ordered list of sort keys, highest priority first,
// holding at most one key per field.
type SortKeys []SortKey

// Toggle cycles f through asc, desc and unsorted. A new field is appended
// with the lowest priority; an ascending key flips in place; a descending
// key is removed.
func (k SortKeys) Toggle(f Field) SortKeys {
	out := make(SortKeys, 0, len(k)+1)
	found := false

	for _, key := range k {
		if key.Field != f {
			out = append(out, key)
			continue
		}
		found = true
		if key.Direction == Asc {
			out = append(out, SortKey{Field: f, Direction: Desc})
		}
	}

	if !found {
		out = append(out, SortKey{Field: f, Direction: Asc})
	}
	return out
}

// Apply returns a sorted copy of list. Items equal on every key keep
// their relative order.
func (k SortKeys) Apply(list []*models.DomainResponse) []*models.DomainResponse {
	out := make([]*models.DomainResponse, len(list))
	copy(out, list)
	if len(k) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return k.compare(out[i], out[j]) < 0
	})
	return out
}

func (k SortKeys) compare(a, b *models.DomainResponse) int {
	for _, key := range k {
		c := compareValues(fieldValue(a, key.Field), fieldValue(b, key.Field))
		if key.Direction == Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// String renders the keys in the form accepted by ParseSort
func (k SortKeys) String() string {
	parts := make([]string, 0, len(k))
	for _, key := range k {
		parts = append(parts, string(key.Field)+":"+string(key.Direction))
	}
	return strings.Join(parts, ",")
}

// ParseSort parses "field:dir,field:dir". A missing direction means asc.
// Repeated fields keep their first position and take the last direction.
func ParseSort(s string) (SortKeys, error) {
	var keys SortKeys
	if strings.TrimSpace(s) == "" {
		return keys, nil
	}

	index := make(map[Field]int)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, dir, _ := strings.Cut(part, ":")
		field := Field(strings.TrimSpace(name))
		if !field.Valid() {
			return nil, fmt.Errorf("unknown sort field %q", name)
		}

		direction := Asc
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "", "asc":
		case "desc":
			direction = Desc
		default:
			return nil, fmt.Errorf("unknown sort direction %q", dir)
		}

		if i, ok := index[field]; ok {
			keys[i].Direction = direction
			continue
		}
		index[field] = len(keys)
		keys = append(keys, SortKey{Field: field, Direction: direction})
	}
	return keys, nil
}

// fieldValue returns a string or float64; nil means the value is missing
func fieldValue(d *models.DomainResponse, f Field) any {
	switch f {
	case FieldName:
		return d.Name
	case FieldRegistrar:
		return d.Registrar
	case FieldCategory:
		return d.Category
	case FieldPurchaseDate:
		return d.PurchaseDate
	case FieldExpirationDate:
		return d.ExpirationDate
	case FieldStatus:
		return d.Status
	case FieldSaleDate:
		return d.SaleDate
	case FieldPurchasePrice:
		if d.PurchasePrice == nil {
			return nil
		}
		return *d.PurchasePrice
	case FieldSellingPrice:
		if d.SellingPrice == nil {
			return nil
		}
		return *d.SellingPrice
	}
	return nil
}

func compareValues(a, b any) int {
	if a == nil {
		a = ""
	}
	if b == nil {
		b = ""
	}

	as, aText := a.(string)
	bs, bText := b.(string)
	switch {
	case aText && bText:
		return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
	case aText:
		// a missing number sorts before any present one
		return -1
	case bText:
		return 1
	}

	af, bf := a.(float64), b.(float64)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	}
	return 0
}
