package lint

import (
	"fmt"
	"slices"
	"strings"
)

// ChangelogList generates the reference links of lints at the bottom of the changelog.
// Lints are sorted by name and internal lints are excluded.
// Deprecated lints are kept.
func ChangelogList(lints []*Lint, docsLink string) []string {
	ret := []string{}
	for _, l := range SortByName(lints) {
		if l.IsInternal() {
			continue
		}
		ret = append(ret, fmt.Sprintf("[`%s`]: %s#%s", l.Name, docsLink, l.Name))
	}
	return ret
}

// Deprecated generates the register_removed statements of deprecated lints.
func Deprecated(lints []*Lint) []string {
	ret := []string{}
	for _, l := range lints {
		if l.Deprecation == nil {
			continue
		}
		ret = append(ret, fmt.Sprintf("    store.register_removed(\n        \"%s\",\n        \"%s\",\n    );", l.Name, *l.Deprecation))
	}
	return ret
}

// ModulesList generates the sorted module declarations of usable lints.
func ModulesList(lints []*Lint) []string {
	modules := []string{}
	for _, l := range Usable(lints) {
		modules = append(modules, l.Module)
	}
	slices.Sort(modules)
	modules = slices.Compact(modules)
	ret := make([]string, len(modules))
	for i, m := range modules {
		ret[i] = fmt.Sprintf("pub mod %s;", m)
	}
	return ret
}

// GroupList generates the sorted paths of usable lints, e.g. the entries of a lint group registration.
func GroupList(lints []*Lint) []string {
	ret := []string{}
	for _, l := range Usable(lints) {
		ret = append(ret, fmt.Sprintf("        %s::%s,", l.Module, strings.ToUpper(l.Name)))
	}
	slices.Sort(ret)
	return ret
}
