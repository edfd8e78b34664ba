// Package portfolio filters, sorts and selects an in-memory domain list.
// Every type here is a value; operations return new values and never mutate
// their receiver or the input list.
package portfolio

import (
	"strings"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/core/domain"
)

// Filter holds the list filters. Empty fields are ignored and the rest are ANDed.
// Date bounds are inclusive YYYY-MM-DD strings.
type Filter struct {
	Search             string `query:"search"`
	Status             string `query:"status"`
	Registrar          string `query:"registrar"`
	Category           string `query:"category"`
	PurchaseDateFrom   string `query:"purchaseDateFrom"`
	PurchaseDateTo     string `query:"purchaseDateTo"`
	ExpirationDateFrom string `query:"expirationDateFrom"`
	ExpirationDateTo   string `query:"expirationDateTo"`
}

// IsZero reports whether no filter field is set
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Match reports whether d satisfies every non-empty field
func (f Filter) Match(d *models.DomainResponse) bool {
	if search := strings.TrimSpace(f.Search); search != "" {
		if !strings.Contains(strings.ToLower(d.Name), strings.ToLower(search)) {
			return false
		}
	}

	if f.Status != "" {
		want := f.Status
		if status, ok := domain.ParseStatus(f.Status); ok {
			want = string(status)
		}
		if d.Status != want {
			return false
		}
	}

	if f.Registrar != "" && d.Registrar != f.Registrar {
		return false
	}
	if f.Category != "" && d.Category != f.Category {
		return false
	}

	return inRange(d.PurchaseDate, f.PurchaseDateFrom, f.PurchaseDateTo) &&
		inRange(d.ExpirationDate, f.ExpirationDateFrom, f.ExpirationDateTo)
}

// Apply returns the matching subsequence of list in its original order
func (f Filter) Apply(list []*models.DomainResponse) []*models.DomainResponse {
	out := make([]*models.DomainResponse, 0, len(list))
	for _, d := range list {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// YYYY-MM-DD strings order the same as the dates they encode.
func inRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
