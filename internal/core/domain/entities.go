package domain

import "strings"

// Status represents the lifecycle state of a tracked domain
type Status string

const (
	StatusActive  Status = "actif"
	StatusSold    Status = "vendu"
	StatusExpired Status = "expire"
	StatusForSale Status = "en-vente"
)

// Statuses lists the canonical values in display order
var Statuses = []Status{StatusActive, StatusForSale, StatusSold, StatusExpired}

var statusAliases = map[string]Status{
	"actif":    StatusActive,
	"active":   StatusActive,
	"vendu":    StatusSold,
	"sold":     StatusSold,
	"expire":   StatusExpired,
	"expired":  StatusExpired,
	"en-vente": StatusForSale,
	"for-sale": StatusForSale,
}

// ParseStatus maps a canonical value or its English alias to the stored value
func ParseStatus(s string) (Status, bool) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]
	return status, ok
}

// CustomLists is the settings document that feeds form choices
type CustomLists struct {
	Registrars      []string `json:"registrars" validate:"required,dive,required,max=100"`
	Categories      []string `json:"categories" validate:"required,dive,required,max=100"`
	EvaluationTools []string `json:"evaluationTools" validate:"required,dive,required,max=100"`
}

// DefaultCustomLists returns the vocabularies used until the user saves their own
func DefaultCustomLists() CustomLists {
	return CustomLists{
		Registrars:      []string{"GoDaddy", "Namecheap", "Google Domains"},
		Categories:      []string{"Business", "Tech", "Entertainment"},
		EvaluationTools: []string{"Estibot", "GoDaddy", "Sedo"},
	}
}

// Normalize trims every entry and drops blanks and repeats, keeping first-seen order
func (l CustomLists) Normalize() CustomLists {
	return CustomLists{
		Registrars:      normalizeList(l.Registrars),
		Categories:      normalizeList(l.Categories),
		EvaluationTools: normalizeList(l.EvaluationTools),
	}
}

// Valid reports whether the document has its three lists
func (l CustomLists) Valid() bool {
	return l.Registrars != nil && l.Categories != nil && l.EvaluationTools != nil
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
