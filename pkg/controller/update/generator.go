package update

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/lintsync/pkg/config"
	"github.com/suzuki-shunsuke/lintsync/pkg/lint"
)

// TemplateData is the data passed to the template of a region.
type TemplateData struct {
	// Lints are usable lints sorted by name.
	Lints []*lint.Lint
	Count int
}

// newGenerator returns the function generating the lines of a region.
// A template is executed here so that its error is returned before the file is read.
func newGenerator(rg *config.Region, docsURL string, lints []*lint.Lint) (func() []string, error) {
	switch rg.Generator {
	case config.GeneratorChangelog:
		return func() []string {
			return lint.ChangelogList(lints, docsURL)
		}, nil
	case config.GeneratorDeprecated:
		return func() []string {
			return lint.Deprecated(lints)
		}, nil
	case config.GeneratorModules:
		return func() []string {
			return lint.ModulesList(lints)
		}, nil
	case config.GeneratorLintGroup:
		return func() []string {
			return lint.GroupList(lint.ByGroup(lints)[rg.Group])
		}, nil
	case config.GeneratorTemplate:
		lines, err := renderTemplate(rg, lints)
		if err != nil {
			return nil, err
		}
		return func() []string {
			return lines
		}, nil
	default:
		return nil, fmt.Errorf("unknown generator: %s", rg.Generator)
	}
}

func renderTemplate(rg *config.Region, lints []*lint.Lint) ([]string, error) {
	tmpl := rg.Tmpl()
	if tmpl == nil {
		return nil, errors.New("template isn't parsed")
	}
	usable := lint.Usable(lints)
	buf := &strings.Builder{}
	if err := tmpl.Execute(buf, &TemplateData{
		Lints: lint.SortByName(usable),
		Count: len(usable),
	}); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), nil
}
