// Package initcmd implements the core logic of 'lintsync init'.
// It creates a lintsync configuration file from a template.
package initcmd

import "github.com/spf13/afero"

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}
