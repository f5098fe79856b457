package lint

import (
	"maps"
	"slices"
	"strings"
)

// Usable returns lints which are neither deprecated nor internal.
func Usable(lints []*Lint) []*Lint {
	ret := make([]*Lint, 0, len(lints))
	for _, l := range lints {
		if l.IsDeprecated() || l.IsInternal() {
			continue
		}
		ret = append(ret, l)
	}
	return ret
}

// ByGroup groups lints by their group.
// In each group lints keep the order of the input.
func ByGroup(lints []*Lint) map[string][]*Lint {
	m := map[string][]*Lint{}
	for _, l := range lints {
		m[l.Group] = append(m[l.Group], l)
	}
	return m
}

// Groups returns the sorted group names of a map returned by ByGroup.
func Groups(m map[string][]*Lint) []string {
	return slices.Sorted(maps.Keys(m))
}

// SortByName returns a copy of lints sorted by name.
func SortByName(lints []*Lint) []*Lint {
	sorted := slices.Clone(lints)
	slices.SortStableFunc(sorted, func(a, b *Lint) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}
