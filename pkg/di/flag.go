package di

import "github.com/suzuki-shunsuke/lintsync/pkg/cli/flag"

// Flags holds all command-line flags for the update command.
type Flags struct {
	*flag.GlobalFlags

	Check  bool
	Diff   bool
	Format string

	IsGitHubActions bool

	Args []string
}

// ListFlags holds command-line flags for the list command.
type ListFlags struct {
	*flag.GlobalFlags

	Group        string
	Deprecated   bool
	Internal     bool
	Format       string
	LineTemplate string
}
