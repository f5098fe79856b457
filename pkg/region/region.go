// Package region replaces regions of line-oriented texts.
// A region is bounded by a line matching a start pattern and a line matching
// an end pattern. The lines between them are replaced with generated lines
// while the end line is always kept.
package region

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Region describes the delimiters of a region.
// Start and End are regular expressions matched against each line.
// If ReplaceStart is true the start line is replaced too.
type Region struct {
	Start        string
	End          string
	ReplaceStart bool
}

type Result struct {
	Text    string
	Found   bool
	Closed  bool
	Removed []string
	Added   []string

	// StartLine is the 1-based line number of the start line. It is 0 if Found is false.
	StartLine int
}

// Replace replaces the first region of text with the lines returned by replacements.
// replacements is called only when the end of the region is found.
// If the start pattern doesn't match any line, Found is false and the text is returned
// with its lines joined by "\n".
func Replace(text string, rg *Region, replacements func() []string) (*Result, error) {
	start, err := regexp.Compile(rg.Start)
	if err != nil {
		return nil, fmt.Errorf("compile the start pattern: %w", err)
	}
	end, err := regexp.Compile(rg.End)
	if err != nil {
		return nil, fmt.Errorf("compile the end pattern: %w", err)
	}

	result := &Result{}
	inRegion := false
	done := false
	newLines := []string{}
	for i, line := range splitLines(text) {
		switch {
		case done:
			newLines = append(newLines, line)
		case inRegion:
			if !end.MatchString(line) {
				result.Removed = append(result.Removed, line)
				continue
			}
			inRegion = false
			done = true
			result.Closed = true
			result.Added = replacements()
			newLines = append(newLines, result.Added...)
			newLines = append(newLines, line)
		case start.MatchString(line):
			if rg.ReplaceStart {
				result.Removed = append(result.Removed, line)
			} else {
				newLines = append(newLines, line)
			}
			inRegion = true
			result.Found = true
			result.StartLine = i + 1
		default:
			newLines = append(newLines, line)
		}
	}
	result.Text = strings.Join(newLines, "\n")
	return result, nil
}

// ReplaceInText replaces the first region of text and returns the new text.
// A missing start pattern isn't an error. It is logged and the text is returned as is.
func ReplaceInText(logE *logrus.Entry, text string, rg *Region, replacements func() []string) (string, error) {
	result, err := Replace(text, rg, replacements)
	if err != nil {
		return "", err
	}
	warnNotFound(logE, rg, result)
	return result.Text, nil
}

func warnNotFound(logE *logrus.Entry, rg *Region, result *Result) {
	if !result.Found {
		logE.WithField("start", rg.Start).Warn("start pattern isn't found. You may have to update it")
		return
	}
	if !result.Closed {
		logE.WithField("end", rg.End).Warn("end pattern isn't found. You may have to update it")
	}
}

// splitLines splits text into lines.
// A final newline doesn't produce an empty last line and a trailing "\r" is dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
