// Package config reads the lintsync configuration file.
// The configuration file defines where lint declarations are searched and
// which regions of which files are regenerated from them.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"text/template"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/lintsync/pkg/lint"
	"github.com/suzuki-shunsuke/lintsync/pkg/region"
	"gopkg.in/yaml.v3"
)

const schemaVersion = 1

const (
	GeneratorChangelog  = "changelog"
	GeneratorDeprecated = "deprecated"
	GeneratorModules    = "modules"
	GeneratorLintGroup  = "lint_group"
	GeneratorTemplate   = "template"
)

type Config struct {
	Version int       `json:"version,omitempty" jsonschema:"enum=1"`
	Source  *Source   `json:"source,omitempty" jsonschema:"description=Where lint declarations are searched"`
	DocsURL string    `json:"docs_url,omitempty" yaml:"docs_url" jsonschema:"description=Base URL of the lint documentation"`
	Regions []*Region `json:"regions,omitempty" jsonschema:"description=Regions of files which are generated from lints"`
}

type Source struct {
	Dir             string `json:"dir,omitempty" jsonschema:"description=Directory searched recursively. The default is clippy_lints/src"`
	Extension       string `json:"extension,omitempty" jsonschema:"description=Extension of source files. The default is rs"`
	LintMacro       string `json:"lint_macro,omitempty" yaml:"lint_macro" jsonschema:"description=Macro declaring a lint. The default is declare_clippy_lint"`
	DeprecatedMacro string `json:"deprecated_macro,omitempty" yaml:"deprecated_macro" jsonschema:"description=Macro declaring a deprecated lint. The default is declare_deprecated_lint"`
}

type Region struct {
	File         string `json:"file" jsonschema:"description=File path"`
	Start        string `json:"start" jsonschema:"description=A regular expression matching the line before the region"`
	End          string `json:"end" jsonschema:"description=A regular expression matching the line after the region. The end line is never replaced"`
	ReplaceStart bool   `json:"replace_start,omitempty" yaml:"replace_start" jsonschema:"description=If true the start line is replaced too"`
	Generator    string `json:"generator" jsonschema:"enum=changelog,enum=deprecated,enum=modules,enum=lint_group,enum=template"`
	Group        string `json:"group,omitempty" jsonschema:"description=Lint group. This is required if generator is lint_group"`
	Template     string `json:"template,omitempty" jsonschema:"description=Go text/template. This is required if generator is template"`
	tmpl         *template.Template
}

// SetDefault fills empty fields with the default values.
func (c *Config) SetDefault() {
	if c.Source == nil {
		c.Source = &Source{}
	}
	if c.Source.Dir == "" {
		c.Source.Dir = "clippy_lints/src"
	}
	if c.Source.Extension == "" {
		c.Source.Extension = "rs"
	}
	if c.Source.LintMacro == "" {
		c.Source.LintMacro = "declare_clippy_lint"
	}
	if c.Source.DeprecatedMacro == "" {
		c.Source.DeprecatedMacro = "declare_deprecated_lint"
	}
	if c.DocsURL == "" {
		c.DocsURL = lint.DocsLink
	}
}

// LintSource converts Source to lint.Source.
func (s *Source) LintSource() *lint.Source {
	return &lint.Source{
		Dir:             s.Dir,
		Extension:       s.Extension,
		LintMacro:       s.LintMacro,
		DeprecatedMacro: s.DeprecatedMacro,
	}
}

func validateSchemaVersion(v int) error {
	if v != schemaVersion {
		return fmt.Errorf("unsupported schema version: %d. version must be %d", v, schemaVersion)
	}
	return nil
}

// Init validates the region and parses its template.
func (r *Region) Init() error {
	if r.File == "" {
		return errors.New("file is required")
	}
	if r.Start == "" {
		return errors.New("start is required")
	}
	if _, err := regexp.Compile(r.Start); err != nil {
		return fmt.Errorf("compile start as a regular expression: %w", err)
	}
	if _, err := regexp.Compile(r.End); err != nil {
		return fmt.Errorf("compile end as a regular expression: %w", err)
	}
	switch r.Generator {
	case GeneratorChangelog, GeneratorDeprecated, GeneratorModules:
		return nil
	case GeneratorLintGroup:
		if r.Group == "" {
			return errors.New("group is required if generator is lint_group")
		}
		return nil
	case GeneratorTemplate:
		if r.Template == "" {
			return errors.New("template is required if generator is template")
		}
		tmpl, err := template.New("region").Parse(r.Template)
		if err != nil {
			return fmt.Errorf("parse template: %w", err)
		}
		r.tmpl = tmpl
		return nil
	case "":
		return errors.New("generator is required")
	default:
		return errors.New("generator must be changelog, deprecated, modules, lint_group, or template")
	}
}

// Region converts the region to region.Region.
func (r *Region) Region() *region.Region {
	return &region.Region{
		Start:        r.Start,
		End:          r.End,
		ReplaceStart: r.ReplaceStart,
	}
}

// Tmpl returns the template parsed by Init.
func (r *Region) Tmpl() *template.Template {
	return r.tmpl
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".lintsync.yaml", ".github/lintsync.yaml", ".lintsync.yml", ".github/lintsync.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read reads a configuration file.
// If configFilePath is empty, cfg only gets the default values.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		cfg.SetDefault()
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := validateSchemaVersion(cfg.Version); err != nil {
		return err
	}
	cfg.SetDefault()
	for _, rg := range cfg.Regions {
		if err := rg.Init(); err != nil {
			return fmt.Errorf("initialize region: %w", err)
		}
	}
	return nil
}
