// Package list implements the 'lintsync list' command.
// This package prints lints gathered from source files, with filters by group
// and custom output formatting.
package list

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/lintsync/pkg/cli/flag"
	"github.com/suzuki-shunsuke/lintsync/pkg/di"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags) *cli.Command {
	flags := &di.ListFlags{GlobalFlags: gf}
	return &cli.Command{
		Name:  "list",
		Usage: "List lints",
		Description: `List lints declared in source files.

$ lintsync list

Output format (default CSV):
<Module>,<Group>,<Name>,<Description>

Deprecated and internal lints are excluded by default.

Filter by group:
$ lintsync list --group style

Custom output format using Go template:
$ lintsync list --line-template "{{.Module}}::{{.Name}}"

Available template fields:
  Name        - Lint name in lower case (e.g., ptr_arg)
  Group       - Lint group (e.g., style)
  Desc        - Description
  Deprecation - Deprecation reason. This is nil unless the lint is deprecated
  Module      - Base name of the source file without the extension
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return di.List(ctx, logE, flags, os.Stdout) //nolint:wrapcheck
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "group",
				Aliases:     []string{"g"},
				Usage:       "Filter lints by group",
				Destination: &flags.Group,
			},
			&cli.BoolFlag{
				Name:        "deprecated",
				Usage:       "Include deprecated lints",
				Destination: &flags.Deprecated,
			},
			&cli.BoolFlag{
				Name:        "internal",
				Usage:       "Include internal lints",
				Destination: &flags.Internal,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format. csv or json",
				Value:       "csv",
				Destination: &flags.Format,
			},
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &flags.LineTemplate,
			},
		},
	}
}
