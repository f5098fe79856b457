// Package update implements the 'lintsync update' command.
package update

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/lintsync/pkg/cli/flag"
	"github.com/suzuki-shunsuke/lintsync/pkg/di"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags) *cli.Command {
	flags := &di.Flags{GlobalFlags: gf}
	return &cli.Command{
		Name:  "update",
		Usage: "Regenerate regions of files from lint declarations",
		Description: `Gather lint declarations and regenerate regions defined in the configuration file.

$ lintsync update

You can also pass file paths as arguments. Only regions of those files are regenerated.

e.g.

$ lintsync update CHANGELOG.md README.md

With --check, files aren't updated and lintsync exits with a non-zero status code if any region is outdated.
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			di.SetEnv(flags, os.Getenv)
			return di.Run(ctx, logE, flags) //nolint:wrapcheck
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "Exit with a non-zero status code if regions are outdated. If this is true, files aren't updated",
				Destination: &flags.Check,
			},
			&cli.BoolFlag{
				Name:        "diff",
				Usage:       "Output diff of regions. By default, this is false",
				Destination: &flags.Diff,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format of findings. Only sarif is supported",
				Destination: &flags.Format,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "files",
				Max:         -1,
				Destination: &flags.Args,
			},
		},
	}
}
