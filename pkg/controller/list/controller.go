// Package list implements the 'lintsync list' command.
// This package prints the lint declarations found in source files, with
// filters by group and options to include deprecated and internal lints.
// The output is CSV by default, and JSON or a Go template are also supported.
package list

import (
	"io"

	"github.com/suzuki-shunsuke/lintsync/pkg/lint"
)

// Controller handles the list command operations.
type Controller struct {
	gatherer LintGatherer
	param    *Param
	stdout   io.Writer
}

type LintGatherer interface {
	GatherAll() ([]*lint.Lint, error)
}

// Param contains parameters for the list command.
type Param struct {
	Group        string
	Deprecated   bool
	Internal     bool
	Format       string
	LineTemplate string
}

// New creates a new Controller for running list operations.
func New(gatherer LintGatherer, param *Param, stdout io.Writer) *Controller {
	return &Controller{
		gatherer: gatherer,
		param:    param,
		stdout:   stdout,
	}
}
