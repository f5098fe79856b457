package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/lintsync/refs/heads/main/json-schema/lintsync.json
# lintsync - https://github.com/suzuki-shunsuke/lintsync
version: 1
# source:
#   dir: clippy_lints/src
#   extension: rs
#   lint_macro: declare_clippy_lint
#   deprecated_macro: declare_deprecated_lint
# docs_url: https://rust-lang-nursery.github.io/rust-clippy/master/index.html

regions:
# - file: CHANGELOG.md
#   start: "<!-- begin autogenerated links to lint list -->"
#   end: "<!-- end autogenerated links to lint list -->"
#   generator: changelog
# - file: clippy_lints/src/lib.rs
#   start: begin deprecated lints
#   end: end deprecated lints
#   generator: deprecated
# - file: README.md
#   start: '\[There are \d+ lints included in this crate!\]'
#   end: ''
#   replace_start: true
#   generator: template
#   template: "[There are {{.Count}} lints included in this crate!]"
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file if it doesn't exist.
// An existing file is never overwritten.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
