// Package cli builds the command line interface of lintsync.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/lintsync/pkg/cli/flag"
	"github.com/suzuki-shunsuke/lintsync/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/lintsync/pkg/cli/list"
	"github.com/suzuki-shunsuke/lintsync/pkg/cli/update"
	"github.com/urfave/cli/v3"
)

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (f *LDFlags) version() string {
	if f.Commit == "" {
		return f.Version
	}
	return f.Version + " (" + f.Commit + ")"
}

// Run parses args and runs the selected subcommand.
// args[0] is the program name.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *LDFlags, args ...string) error {
	gf := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "lintsync",
		Usage:                 "Regenerate lint lists in documentation and source files. https://github.com/suzuki-shunsuke/lintsync",
		Version:               ldFlags.version(),
		Flags:                 gf.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			update.New(logE, gf),
			list.New(logE, gf),
			initcmd.New(logE, gf),
			newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
