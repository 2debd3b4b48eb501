package runtime

import (
	"sort"

	"github.com/resultflow/careflow/pkg/domain"
)

// Selection is the transient set of displayed-but-not-yet-added products.
// It is cleared unconditionally after every successful bulk add.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips membership for a product ID. There is no upper bound on the
// number of selected products.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// ToggleAll selects exactly the listed products, unless every one of them
// is already selected, in which case the selection is cleared entirely.
// A partial prior selection is replaced, not unioned.
func (s *Selection) ToggleAll(products []domain.Product) {
	allSelected := len(products) > 0
	for _, p := range products {
		if _, ok := s.ids[p.ID]; !ok {
			allSelected = false
			break
		}
	}

	s.ids = make(map[string]struct{})
	if allSelected {
		return
	}
	for _, p := range products {
		s.ids[p.ID] = struct{}{}
	}
}

// Has reports membership.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected products.
func (s *Selection) Len() int { return len(s.ids) }

// Drain returns the candidates that are currently selected (stale IDs in
// the selection are ignored) and clears the selection unconditionally.
func (s *Selection) Drain(candidates []domain.Product) []domain.Product {
	picked := make([]domain.Product, 0, len(s.ids))
	for _, p := range candidates {
		if _, ok := s.ids[p.ID]; ok {
			picked = append(picked, p)
		}
	}
	s.ids = make(map[string]struct{})
	return picked
}

// List returns the selected IDs in sorted order for stable snapshots.
func (s *Selection) List() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Restore replaces the selection with the given IDs.
func (s *Selection) Restore(ids []string) {
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}
