package portfolio

import (
	"errors"
	"sort"

	"domainfolio/internal/adapters/persistence/models"
)

var (
	ErrEmptySelection = errors.New("no domain selected")
	ErrEmptyPatch     = errors.New("no field to update")
)

// Selection is an immutable set of domain ids
type Selection struct {
	ids map[uint]struct{}
}

func NewSelection(ids ...uint) Selection {
	return Selection{}.With(ids...)
}

func (s Selection) Has(id uint) bool {
	_, ok := s.ids[id]
	return ok
}

func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order
func (s Selection) IDs() []uint {
	ids := make([]uint, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// With returns s plus ids
func (s Selection) With(ids ...uint) Selection {
	next := s.clone(len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}
	return Selection{ids: next}
}

// Without returns s minus ids
func (s Selection) Without(ids ...uint) Selection {
	next := s.clone(0)
	for _, id := range ids {
		delete(next, id)
	}
	return Selection{ids: next}
}

func (s Selection) clone(extra int) map[uint]struct{} {
	next := make(map[uint]struct{}, len(s.ids)+extra)
	for id := range s.ids {
		next[id] = struct{}{}
	}
	return next
}

// View is the filter, sort and selection state over a domain list
type View struct {
	Filter    Filter
	Sort      SortKeys
	Selection Selection
}

func (v View) WithFilter(f Filter) View {
	v.Filter = f
	return v
}

// ToggleSort cycles the sort key of f
func (v View) ToggleSort(f Field) View {
	v.Sort = v.Sort.Toggle(f)
	return v
}

func (v View) Select(ids ...uint) View {
	v.Selection = v.Selection.With(ids...)
	return v
}

func (v View) Deselect(ids ...uint) View {
	v.Selection = v.Selection.Without(ids...)
	return v
}

// SelectAll selects every domain of list visible through the current filter
func (v View) SelectAll(list []*models.DomainResponse) View {
	visible := v.Filter.Apply(list)
	ids := make([]uint, 0, len(visible))
	for _, d := range visible {
		ids = append(ids, d.ID)
	}
	return v.Select(ids...)
}

func (v View) ClearSelection() View {
	v.Selection = Selection{}
	return v
}

// Apply filters then sorts list
func (v View) Apply(list []*models.DomainResponse) []*models.DomainResponse {
	return v.Sort.Apply(v.Filter.Apply(list))
}

// Selected returns the selected domains still visible, in view order
func (v View) Selected(list []*models.DomainResponse) []*models.DomainResponse {
	var out []*models.DomainResponse
	for _, d := range v.Apply(list) {
		if v.Selection.Has(d.ID) {
			out = append(out, d)
		}
	}
	return out
}

// Patch is a partial update applied to every item of a bulk update.
// Nil fields are left unchanged.
type Patch struct {
	Status    *string `json:"status,omitempty"`
	Registrar *string `json:"registrar,omitempty"`
	Category  *string `json:"category,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.Registrar == nil && p.Category == nil
}

// DeletePlan lists the ids a bulk delete will remove, one by one
type DeletePlan struct {
	IDs []uint
}

// UpdatePlan lists the ids a bulk update will patch, one by one
type UpdatePlan struct {
	IDs   []uint
	Patch Patch
}

func (v View) PlanDelete() (DeletePlan, error) {
	if v.Selection.Len() == 0 {
		return DeletePlan{}, ErrEmptySelection
	}
	return DeletePlan{IDs: v.Selection.IDs()}, nil
}

func (v View) PlanUpdate(p Patch) (UpdatePlan, error) {
	if v.Selection.Len() == 0 {
		return UpdatePlan{}, ErrEmptySelection
	}
	if p.IsEmpty() {
		return UpdatePlan{}, ErrEmptyPatch
	}
	return UpdatePlan{IDs: v.Selection.IDs(), Patch: p}, nil
}
