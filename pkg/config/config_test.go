package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/lintsync/pkg/config"
)

func TestFinder_Find(t *testing.T) {
	t.Parallel()
	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()
		finder := config.NewFinder(afero.NewMemMapFs())
		got, err := finder.Find("/custom/path.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/custom/path.yaml" {
			t.Errorf("wanted %q, got %q", "/custom/path.yaml", got)
		}
	})

	t.Run("search default paths", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, ".github/lintsync.yaml", []byte(""), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := config.NewFinder(fs).Find("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != ".github/lintsync.yaml" {
			t.Errorf("wanted %q, got %q", ".github/lintsync.yaml", got)
		}
	})
}

func TestReader_Read(t *testing.T) { //nolint:funlen
	t.Parallel()
	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		cfg := &config.Config{}
		if err := config.NewReader(afero.NewMemMapFs()).Read(cfg, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Source.Dir != "clippy_lints/src" {
			t.Errorf("Source.Dir: wanted %q, got %q", "clippy_lints/src", cfg.Source.Dir)
		}
		if len(cfg.Regions) != 0 {
			t.Errorf("Regions: wanted 0, got %d", len(cfg.Regions))
		}
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		content := `version: 1
source:
  dir: lints
  lint_macro: declare_lint_macro
docs_url: https://example.com/lints.html
regions:
  - file: CHANGELOG.md
    start: "<!-- begin autogenerated links to lint list -->"
    end: "<!-- end autogenerated links to lint list -->"
    generator: changelog
  - file: README.md
    start: '\[There are \d+ lints included in this crate!\]'
    end: ''
    replace_start: true
    generator: template
    template: "[There are {{.Count}} lints included in this crate!]"
`
		if err := afero.WriteFile(fs, ".lintsync.yaml", []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg := &config.Config{}
		if err := config.NewReader(fs).Read(cfg, ".lintsync.yaml"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Source.Dir != "lints" {
			t.Errorf("Source.Dir: wanted %q, got %q", "lints", cfg.Source.Dir)
		}
		if cfg.Source.LintMacro != "declare_lint_macro" {
			t.Errorf("Source.LintMacro: wanted %q, got %q", "declare_lint_macro", cfg.Source.LintMacro)
		}
		if cfg.Source.DeprecatedMacro != "declare_deprecated_lint" {
			t.Errorf("Source.DeprecatedMacro: wanted %q, got %q", "declare_deprecated_lint", cfg.Source.DeprecatedMacro)
		}
		if cfg.DocsURL != "https://example.com/lints.html" {
			t.Errorf("DocsURL: wanted %q, got %q", "https://example.com/lints.html", cfg.DocsURL)
		}
		if len(cfg.Regions) != 2 {
			t.Fatalf("Regions: wanted 2, got %d", len(cfg.Regions))
		}
		if !cfg.Regions[1].ReplaceStart {
			t.Error("Regions[1].ReplaceStart: wanted true, got false")
		}
		if cfg.Regions[1].Tmpl() == nil {
			t.Error("Regions[1].Tmpl: template must be parsed")
		}
	})

	t.Run("invalid version", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, ".lintsync.yaml", []byte("version: 2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := config.NewReader(fs).Read(&config.Config{}, ".lintsync.yaml"); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("invalid region", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		content := `version: 1
regions:
  - file: lib.rs
    start: "["
    end: end
    generator: deprecated
`
		if err := afero.WriteFile(fs, ".lintsync.yaml", []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := config.NewReader(fs).Read(&config.Config{}, ".lintsync.yaml"); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		t.Parallel()
		if err := config.NewReader(afero.NewMemMapFs()).Read(&config.Config{}, "missing.yaml"); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
