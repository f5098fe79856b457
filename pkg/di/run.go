// Package di creates and wires together the dependencies of lintsync commands.
package di

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/lintsync/pkg/config"
	"github.com/suzuki-shunsuke/lintsync/pkg/controller/list"
	"github.com/suzuki-shunsuke/lintsync/pkg/controller/update"
	"github.com/suzuki-shunsuke/lintsync/pkg/lint"
	"github.com/suzuki-shunsuke/lintsync/pkg/log"
	"github.com/suzuki-shunsuke/lintsync/pkg/region"
)

// Run regenerates regions.
// It configures logging, reads the configuration file, and runs the update controller.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	log.SetLevel(flags.LogLevel, logE)
	return runUpdate(ctx, logE, afero.NewOsFs(), flags, os.Stdout, os.Stderr)
}

func runUpdate(ctx context.Context, logE *logrus.Entry, fs afero.Fs, flags *Flags, stdout, stderr io.Writer) error {
	cfg, err := ReadConfig(fs, flags.Config)
	if err != nil {
		return err
	}
	gatherer, err := lint.NewGatherer(fs, cfg.Source.LintSource())
	if err != nil {
		return fmt.Errorf("set up a lint gatherer: %w", err)
	}
	ctrl := update.New(gatherer, region.NewReplacer(fs), cfg, &update.Param{
		Files:  flags.Args,
		Check:  flags.Check,
		Diff:   flags.Diff,
		Format: flags.Format,
		Stdout: stdout,
		Stderr: stderr,
	})
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

// List prints lints to stdout.
func List(ctx context.Context, logE *logrus.Entry, flags *ListFlags, stdout io.Writer) error {
	log.SetLevel(flags.LogLevel, logE)
	return runList(ctx, logE, afero.NewOsFs(), flags, stdout)
}

func runList(ctx context.Context, logE *logrus.Entry, fs afero.Fs, flags *ListFlags, stdout io.Writer) error {
	cfg, err := ReadConfig(fs, flags.Config)
	if err != nil {
		return err
	}
	gatherer, err := lint.NewGatherer(fs, cfg.Source.LintSource())
	if err != nil {
		return fmt.Errorf("set up a lint gatherer: %w", err)
	}
	ctrl := list.New(gatherer, &list.Param{
		Group:        flags.Group,
		Deprecated:   flags.Deprecated,
		Internal:     flags.Internal,
		Format:       flags.Format,
		LineTemplate: flags.LineTemplate,
	}, stdout)
	return ctrl.List(ctx, logE) //nolint:wrapcheck
}

// ReadConfig finds and reads a configuration file.
// If no configuration file is found, the default configuration is returned.
func ReadConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}
