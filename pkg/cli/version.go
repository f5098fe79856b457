package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func newVersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show version",
		Action: versionAction,
	}
}

func versionAction(_ context.Context, c *cli.Command) error {
	cli.ShowVersion(c.Root())
	return nil
}
