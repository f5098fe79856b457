package lint_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/lintsync/pkg/lint"
	"github.com/suzuki-shunsuke/lintsync/pkg/util"
)

func TestUsable(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		lints []*lint.Lint
		exp   []*lint.Lint
	}{
		{
			name: "deprecated and internal lints are excluded",
			lints: []*lint.Lint{
				lint.New("should_assert_eq", "Deprecated", "abc", util.StrP("Reason"), "module_name"),
				lint.New("should_assert_eq2", "Not Deprecated", "abc", nil, "module_name"),
				lint.New("should_assert_eq2", "internal", "abc", nil, "module_name"),
				lint.New("should_assert_eq2", "internal_style", "abc", nil, "module_name"),
			},
			exp: []*lint.Lint{
				lint.New("should_assert_eq2", "Not Deprecated", "abc", nil, "module_name"),
			},
		},
		{
			name: "deprecated lint in a normal group",
			lints: []*lint.Lint{
				lint.New("foo", "style", "abc", util.StrP("Reason"), "module_name"),
			},
			exp: []*lint.Lint{},
		},
		{
			name: "identity",
			lints: []*lint.Lint{
				lint.New("foo", "style", "abc", nil, "a"),
				lint.New("bar", "pedantic", "abc", nil, "b"),
			},
			exp: []*lint.Lint{
				lint.New("foo", "style", "abc", nil, "a"),
				lint.New("bar", "pedantic", "abc", nil, "b"),
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(d.exp, lint.Usable(d.lints)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestByGroup(t *testing.T) {
	t.Parallel()
	lints := []*lint.Lint{
		lint.New("should_assert_eq", "group1", "abc", nil, "module_name"),
		lint.New("should_assert_eq2", "group2", "abc", nil, "module_name"),
		lint.New("incorrect_match", "group1", "abc", nil, "module_name"),
	}
	exp := map[string][]*lint.Lint{
		"group1": {
			lint.New("should_assert_eq", "group1", "abc", nil, "module_name"),
			lint.New("incorrect_match", "group1", "abc", nil, "module_name"),
		},
		"group2": {
			lint.New("should_assert_eq2", "group2", "abc", nil, "module_name"),
		},
	}
	got := lint.ByGroup(lints)
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatal(diff)
	}
	n := 0
	for group, ls := range got {
		n += len(ls)
		for _, l := range ls {
			if l.Group != group {
				t.Errorf("lint %s is grouped in %s", l.Name, group)
			}
		}
	}
	if n != len(lints) {
		t.Fatalf("wanted %d lints, got %d", len(lints), n)
	}
	if diff := cmp.Diff([]string{"group1", "group2"}, lint.Groups(got)); diff != "" {
		t.Fatal(diff)
	}
}
