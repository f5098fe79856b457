// Package lint extracts lint declarations from source files and generates
// the text that other files embed about them.
// Declarations are recognized with regular expressions over the whole file
// text, not with a parser of the host language, so only the rigid
// macro-invocation shapes are supported. Records are recomputed on every run
// and never persisted.
package lint

import (
	"regexp"
	"strings"
)

// DocsLink is the default base URL of the lint documentation.
const DocsLink = "https://rust-lang-nursery.github.io/rust-clippy/master/index.html"

const (
	groupDeprecated = "Deprecated"
	prefixInternal  = "internal"
)

var nlEscapePattern = regexp.MustCompile(`\\\n\s*`)

// Lint is a lint declaration parsed from a source file.
type Lint struct {
	Name        string  `json:"name"`
	Group       string  `json:"group"`
	Desc        string  `json:"description"`
	Deprecation *string `json:"deprecation,omitempty"`
	Module      string  `json:"module"`
}

// New creates a Lint.
// The name is lowercased. In the description escaped quotes are unescaped
// and line continuations (a backslash, a newline and the following
// indentation) are removed so that a multi-line literal becomes one line.
func New(name, group, desc string, deprecation *string, module string) *Lint {
	l := &Lint{
		Name:   strings.ToLower(name),
		Group:  group,
		Desc:   nlEscapePattern.ReplaceAllString(strings.ReplaceAll(desc, `\"`, `"`), ""),
		Module: module,
	}
	if deprecation != nil {
		d := *deprecation
		l.Deprecation = &d
	}
	return l
}

// IsInternal returns true if the lint belongs to an internal group.
func (l *Lint) IsInternal() bool {
	return strings.HasPrefix(l.Group, prefixInternal)
}

// IsDeprecated returns true if the lint was declared by the deprecated lint macro.
func (l *Lint) IsDeprecated() bool {
	return l.Deprecation != nil
}

// Equal returns true if all fields of both lints are equal.
// Deprecations are compared by value.
func (l *Lint) Equal(other *Lint) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.Name != other.Name || l.Group != other.Group || l.Desc != other.Desc || l.Module != other.Module {
		return false
	}
	if l.Deprecation == nil || other.Deprecation == nil {
		return l.Deprecation == other.Deprecation
	}
	return *l.Deprecation == *other.Deprecation
}
