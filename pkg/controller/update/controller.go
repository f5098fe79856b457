// Package update implements the core logic of 'lintsync update'.
// It gathers lint declarations from source files, generates the lines of every
// configured region from them, and rewrites the regions of the target files.
// In check mode files aren't modified and outdated regions make the command fail.
package update

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/lintsync/pkg/config"
	"github.com/suzuki-shunsuke/lintsync/pkg/lint"
	"github.com/suzuki-shunsuke/lintsync/pkg/region"
)

type Controller struct {
	gatherer LintGatherer
	replacer RegionReplacer
	cfg      *config.Config
	param    *Param
	logger   *Logger
	findings []*Finding
}

type LintGatherer interface {
	GatherAll() ([]*lint.Lint, error)
}

type RegionReplacer interface {
	Read(logE *logrus.Entry, path string, rg *region.Region, replacements func() []string) (*region.FileResult, error)
	Write(fr *region.FileResult) error
}

type Param struct {
	// Files restricts target regions to regions of these files.
	Files []string
	Check bool
	Diff  bool
	// Format is the output format of findings. Only sarif is supported.
	// If it is empty, findings aren't output.
	Format string
	Stdout io.Writer
	Stderr io.Writer
}

func New(gatherer LintGatherer, replacer RegionReplacer, cfg *config.Config, param *Param) *Controller {
	return &Controller{
		gatherer: gatherer,
		replacer: replacer,
		cfg:      cfg,
		param:    param,
		logger:   NewLogger(param.Stderr),
	}
}
