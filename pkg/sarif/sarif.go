// Package sarif encodes results of lintsync as SARIF 2.1.0 logs.
// Only the subset of the format which code scanning tools need is supported.
// https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html
package sarif

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	schemaURL = "https://json.schemastore.org/sarif-2.1.0.json"
	version   = "2.1.0"
)

const (
	LevelError   = "error"
	LevelWarning = "warning"
)

type Log struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name           string `json:"name"`
	InformationURI string `json:"informationUri,omitempty"`
	Version        string `json:"version,omitempty"`
	Rules          []Rule `json:"rules,omitempty"`
}

type Rule struct {
	ID               string  `json:"id"`
	ShortDescription Message `json:"shortDescription"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           *Region          `json:"region,omitempty"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region is a range of lines. StartLine is 1-based.
type Region struct {
	StartLine int `json:"startLine"`
}

// NewLog returns a log with a single run.
// results may be nil, in which case an empty array is encoded.
func NewLog(driver Driver, results []Result) *Log {
	if results == nil {
		results = []Result{}
	}
	return &Log{
		Schema:  schemaURL,
		Version: version,
		Runs: []Run{
			{
				Tool:    Tool{Driver: driver},
				Results: results,
			},
		},
	}
}

// NewResult returns a result located at a line of a file.
// If line is 0, the location has no region.
func NewResult(ruleID, level, msg, path string, line int) Result {
	loc := PhysicalLocation{
		ArtifactLocation: ArtifactLocation{URI: path},
	}
	if line > 0 {
		loc.Region = &Region{StartLine: line}
	}
	return Result{
		RuleID:    ruleID,
		Level:     level,
		Message:   Message{Text: msg},
		Locations: []Location{{PhysicalLocation: loc}},
	}
}

// Encode writes the log to w as indented JSON.
func (l *Log) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(l); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}
