// Package initcmd implements the 'lintsync init' command.
package initcmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/lintsync/pkg/cli/flag"
	"github.com/suzuki-shunsuke/lintsync/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/lintsync/pkg/log"
	"github.com/urfave/cli/v3"
)

const defaultConfigFilePath = ".lintsync.yaml"

func New(logE *logrus.Entry, gf *flag.GlobalFlags) *cli.Command {
	var args []string
	return &cli.Command{
		Name:  "init",
		Usage: "Create .lintsync.yaml if it doesn't exist",
		Description: `Create .lintsync.yaml if it doesn't exist

$ lintsync init

You can also pass configuration file path.

e.g.

$ lintsync init .github/lintsync.yaml
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			log.SetLevel(gf.LogLevel, logE)
			p := configFilePath(args, gf.Config)
			logE.WithField("config", p).Debug("create a configuration file")
			return initcmd.New(afero.NewOsFs()).Init(p) //nolint:wrapcheck
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "config",
				Max:         1,
				Destination: &args,
			},
		},
	}
}

func configFilePath(args []string, cfg string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg != "" {
		return cfg
	}
	return defaultConfigFilePath
}
