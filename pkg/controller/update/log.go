package update

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/suzuki-shunsuke/lintsync/pkg/region"
)

type colorFunc func(a ...any) string

// Logger outputs the diff of outdated regions.
type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
	yellow colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Output(fr *region.FileResult) {
	fmt.Fprintf(l.stderr, "%s %s\n", l.yellow("OUTDATED"), fr.Path)
	for _, line := range fr.Removed {
		fmt.Fprintln(l.stderr, l.red("- "+line))
	}
	for _, line := range fr.Added {
		fmt.Fprintln(l.stderr, l.green("+ "+line))
	}
}
