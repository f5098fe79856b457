package lint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const (
	namePattern = `(?P<name>[A-Z_][A-Z_0-9]*)`
	catPattern  = `(?P<cat>[a-z_]+)`
	descPattern = `"(?P<desc>(?:[^"\\]+|\\(?s:.))*)"`
)

// Source describes where lint declarations are searched.
type Source struct {
	Dir             string
	Extension       string
	LintMacro       string
	DeprecatedMacro string
}

type patterns struct {
	lint       *regexp.Regexp
	deprecated *regexp.Regexp
}

func compilePatterns(src *Source) (*patterns, error) {
	if src.LintMacro == "" || src.DeprecatedMacro == "" {
		return nil, errors.New("macro names are required")
	}
	l, err := regexp.Compile(regexp.QuoteMeta(src.LintMacro) +
		`!\s*[{(]\s*pub\s+` + namePattern + `\s*,\s*` + catPattern + `\s*,\s*` + descPattern + `\s*[})]`)
	if err != nil {
		return nil, fmt.Errorf("compile the lint pattern: %w", err)
	}
	d, err := regexp.Compile(regexp.QuoteMeta(src.DeprecatedMacro) +
		`!\s*[{(]\s*pub\s+` + namePattern + `\s*,\s*` + descPattern + `\s*[})]`)
	if err != nil {
		return nil, fmt.Errorf("compile the deprecated lint pattern: %w", err)
	}
	return &patterns{lint: l, deprecated: d}, nil
}

var defaultPatterns = func() *patterns { //nolint:gochecknoglobals
	p, err := compilePatterns(&Source{
		LintMacro:       "declare_clippy_lint",
		DeprecatedMacro: "declare_deprecated_lint",
	})
	if err != nil {
		panic(err)
	}
	return p
}()

// Gatherer collects lint declarations from source files.
type Gatherer struct {
	fs       afero.Fs
	src      *Source
	patterns *patterns
}

// NewGatherer compiles the declaration patterns of src and returns a Gatherer.
func NewGatherer(fs afero.Fs, src *Source) (*Gatherer, error) {
	p, err := compilePatterns(src)
	if err != nil {
		return nil, err
	}
	return &Gatherer{
		fs:       fs,
		src:      src,
		patterns: p,
	}, nil
}

// GatherAll walks the source directory and parses all source files.
// Files are visited in lexical order, so the result is stable for an unchanged tree.
// Any error while walking or reading files aborts the whole gathering.
func (g *Gatherer) GatherAll() ([]*Lint, error) {
	files, err := g.listFiles()
	if err != nil {
		return nil, err
	}
	lints := []*Lint{}
	for _, file := range files {
		ls, err := g.gatherFromFile(file)
		if err != nil {
			return nil, err
		}
		lints = append(lints, ls...)
	}
	return lints, nil
}

func (g *Gatherer) listFiles() ([]string, error) {
	ext := "." + strings.TrimPrefix(g.src.Extension, ".")
	files := []string{}
	if err := afero.Walk(g.fs, g.src.Dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(p) == ext {
			files = append(files, p)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("search source files: %w", logerr.WithFields(err, logrus.Fields{
			"source_dir": g.src.Dir,
		}))
	}
	return files, nil
}

func (g *Gatherer) gatherFromFile(p string) ([]*Lint, error) {
	b, err := afero.ReadFile(g.fs, p)
	if err != nil {
		return nil, fmt.Errorf("read a source file: %w", logerr.WithFields(err, logrus.Fields{
			"path": p,
		}))
	}
	module := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	return g.patterns.parse(string(b), module), nil
}

// ParseContents parses lint declarations of the default macros in a text.
// module is recorded as the module of every lint.
func ParseContents(content, module string) []*Lint {
	return defaultPatterns.parse(content, module)
}

func (p *patterns) parse(content, module string) []*Lint {
	lints := []*Lint{}
	nameIdx := p.lint.SubexpIndex("name")
	catIdx := p.lint.SubexpIndex("cat")
	descIdx := p.lint.SubexpIndex("desc")
	for _, m := range p.lint.FindAllStringSubmatch(content, -1) {
		lints = append(lints, New(m[nameIdx], m[catIdx], m[descIdx], nil, module))
	}
	nameIdx = p.deprecated.SubexpIndex("name")
	descIdx = p.deprecated.SubexpIndex("desc")
	for _, m := range p.deprecated.FindAllStringSubmatch(content, -1) {
		desc := m[descIdx]
		lints = append(lints, New(m[nameIdx], groupDeprecated, desc, &desc, module))
	}
	return lints
}
