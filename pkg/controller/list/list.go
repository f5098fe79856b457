package list

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/lintsync/pkg/lint"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

// List gathers lints and outputs them.
func (c *Controller) List(_ context.Context, logE *logrus.Entry) error {
	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}
	lints, err := c.gatherer.GatherAll()
	if err != nil {
		return fmt.Errorf("gather lints: %w", err)
	}
	lints = c.filter(logE, lints)
	if tmpl != nil {
		return c.outputTemplate(lints, tmpl)
	}
	switch c.param.Format {
	case "", formatCSV:
		return c.outputCSV(lints)
	case formatJSON:
		return c.outputJSON(lints)
	default:
		return errors.New("format must be csv or json")
	}
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) filter(logE *logrus.Entry, lints []*lint.Lint) []*lint.Lint {
	ret := make([]*lint.Lint, 0, len(lints))
	for _, l := range lints {
		if l.IsDeprecated() && !c.param.Deprecated {
			logE.WithField("lint", l.Name).Debug("exclude the deprecated lint")
			continue
		}
		if l.IsInternal() && !c.param.Internal {
			logE.WithField("lint", l.Name).Debug("exclude the internal lint")
			continue
		}
		if c.param.Group != "" && l.Group != c.param.Group {
			continue
		}
		ret = append(ret, l)
	}
	return ret
}

func (c *Controller) outputTemplate(lints []*lint.Lint, tmpl *template.Template) error {
	for _, l := range lints {
		if err := tmpl.Execute(c.stdout, l); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
	}
	return nil
}

// outputCSV outputs lints in the format <Module>,<Group>,<Name>,<Description>.
func (c *Controller) outputCSV(lints []*lint.Lint) error {
	w := csv.NewWriter(c.stdout)
	for _, l := range lints {
		if err := w.Write([]string{l.Module, l.Group, l.Name, l.Desc}); err != nil {
			return fmt.Errorf("write a lint as CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}

func (c *Controller) outputJSON(lints []*lint.Lint) error {
	encoder := json.NewEncoder(c.stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(lints); err != nil {
		return fmt.Errorf("encode lints as JSON: %w", err)
	}
	return nil
}
