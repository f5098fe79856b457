package update

import (
	"github.com/suzuki-shunsuke/lintsync/pkg/region"
	"github.com/suzuki-shunsuke/lintsync/pkg/sarif"
)

const (
	FormatSARIF = "sarif"

	ruleOutdatedRegion = "outdated-region"
	ruleRegionNotFound = "region-not-found"
)

// Finding is a region which needs attention.
type Finding struct {
	RuleID  string
	File    string
	Line    int
	Message string
}

func (c *Controller) addFinding(fr *region.FileResult) {
	switch {
	case !fr.Found:
		c.findings = append(c.findings, &Finding{
			RuleID:  ruleRegionNotFound,
			File:    fr.Path,
			Message: "start pattern isn't found",
		})
	case !fr.Closed:
		c.findings = append(c.findings, &Finding{
			RuleID:  ruleRegionNotFound,
			File:    fr.Path,
			Line:    fr.StartLine,
			Message: "end pattern isn't found",
		})
	case fr.Changed && c.param.Check:
		c.findings = append(c.findings, &Finding{
			RuleID:  ruleOutdatedRegion,
			File:    fr.Path,
			Line:    fr.StartLine,
			Message: "the generated region is outdated. Run 'lintsync update'",
		})
	}
}

func (c *Controller) outputSARIF() error {
	results := make([]sarif.Result, len(c.findings))
	for i, f := range c.findings {
		level := sarif.LevelError
		if f.RuleID == ruleRegionNotFound {
			level = sarif.LevelWarning
		}
		results[i] = sarif.NewResult(f.RuleID, level, f.Message, f.File, f.Line)
	}
	return sarif.NewLog(sarif.Driver{ //nolint:wrapcheck
		Name:           "lintsync",
		InformationURI: "https://github.com/suzuki-shunsuke/lintsync",
		Rules: []sarif.Rule{
			{
				ID:               ruleOutdatedRegion,
				ShortDescription: sarif.Message{Text: "Generated region is outdated"},
			},
			{
				ID:               ruleRegionNotFound,
				ShortDescription: sarif.Message{Text: "Region isn't found"},
			},
		},
	}, results).Encode(c.param.Stdout)
}
