package update

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/lintsync/pkg/config"
	"github.com/suzuki-shunsuke/lintsync/pkg/lint"
)

var ErrOutdated = errors.New("generated regions are outdated")

func (c *Controller) Run(_ context.Context, logE *logrus.Entry) error {
	if c.param.Format != "" && c.param.Format != FormatSARIF {
		return errors.New("format must be sarif")
	}
	c.findings = nil
	lints, err := c.gatherer.GatherAll()
	if err != nil {
		return fmt.Errorf("gather lints: %w", err)
	}
	logE.WithField("num_of_lints", len(lints)).Debug("gathered lints")

	outdated := false
	for _, rg := range c.cfg.Regions {
		if !c.isTarget(rg.File) {
			continue
		}
		logE := logE.WithFields(logrus.Fields{
			"file":      rg.File,
			"generator": rg.Generator,
		})
		changed, err := c.updateRegion(logE, rg, lints)
		if err != nil {
			return err
		}
		if changed && c.param.Check {
			outdated = true
		}
	}
	if c.param.Format == FormatSARIF {
		if err := c.outputSARIF(); err != nil {
			return err
		}
	}
	if outdated {
		return ErrOutdated
	}
	return nil
}

func (c *Controller) isTarget(file string) bool {
	if len(c.param.Files) == 0 {
		return true
	}
	return slices.ContainsFunc(c.param.Files, func(f string) bool {
		return filepath.Clean(f) == filepath.Clean(file)
	})
}

func (c *Controller) updateRegion(logE *logrus.Entry, rg *config.Region, lints []*lint.Lint) (bool, error) {
	gen, err := newGenerator(rg, c.cfg.DocsURL, lints)
	if err != nil {
		return false, err
	}
	fr, err := c.replacer.Read(logE, rg.File, rg.Region(), gen)
	if err != nil {
		return false, fmt.Errorf("replace a region: %w", err)
	}
	c.addFinding(fr)
	if !fr.Found || !fr.Closed {
		return false, nil
	}
	if !fr.Changed {
		logE.Debug("the region is up to date")
		return false, nil
	}
	if c.param.Check || c.param.Diff {
		c.logger.Output(fr)
	}
	if c.param.Check {
		return true, nil
	}
	if err := c.replacer.Write(fr); err != nil {
		return false, fmt.Errorf("write a file: %w", err)
	}
	logE.Info("updated the region")
	return true, nil
}
