package sarif_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/lintsync/pkg/sarif"
)

func TestLog_Encode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		results []sarif.Result
		exp     int
	}{
		{
			name: "nil results",
			exp:  0,
		},
		{
			name: "results",
			results: []sarif.Result{
				sarif.NewResult("outdated-region", sarif.LevelError, "the region is outdated", "CHANGELOG.md", 10),
				sarif.NewResult("region-not-found", sarif.LevelWarning, "start pattern isn't found", "README.md", 0),
			},
			exp: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			l := sarif.NewLog(sarif.Driver{Name: "lintsync"}, tt.results)
			if err := l.Encode(buf); err != nil {
				t.Fatal(err)
			}
			got := &sarif.Log{}
			if err := json.Unmarshal(buf.Bytes(), got); err != nil {
				t.Fatalf("output must be valid JSON: %v", err)
			}
			if got.Version != "2.1.0" {
				t.Errorf("Version: wanted 2.1.0, got %s", got.Version)
			}
			if len(got.Runs) != 1 {
				t.Fatalf("wanted 1 run, got %d", len(got.Runs))
			}
			if got.Runs[0].Results == nil {
				t.Error("results must be an array")
			}
			if n := len(got.Runs[0].Results); n != tt.exp {
				t.Errorf("wanted %d results, got %d", tt.exp, n)
			}
		})
	}
}

func TestNewResult(t *testing.T) {
	t.Parallel()
	got := sarif.NewResult("outdated-region", sarif.LevelError, "msg", "lib.rs", 3)
	exp := sarif.Result{
		RuleID:  "outdated-region",
		Level:   "error",
		Message: sarif.Message{Text: "msg"},
		Locations: []sarif.Location{
			{
				PhysicalLocation: sarif.PhysicalLocation{
					ArtifactLocation: sarif.ArtifactLocation{URI: "lib.rs"},
					Region:           &sarif.Region{StartLine: 3},
				},
			},
		},
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatal(diff)
	}
	if r := sarif.NewResult("region-not-found", sarif.LevelWarning, "msg", "lib.rs", 0); r.Locations[0].PhysicalLocation.Region != nil {
		t.Error("region must be nil if line is 0")
	}
}
