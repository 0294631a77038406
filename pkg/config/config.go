// Package config loads, validates and resolves codecat configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"codecat/pkg/classify"
	"codecat/pkg/scanner"
)

// Config represents the effective codecat configuration.
type Config struct {
	// OutputFile is the Markdown file written by "run", relative to the project.
	OutputFile string `yaml:"output_file" json:"output_file"`

	// IncludePatterns are globs a file must match; empty includes everything.
	IncludePatterns []string `yaml:"include_patterns" json:"include_patterns"`

	// ExcludePatterns are globs that exclude files and directories.
	ExcludePatterns []string `yaml:"exclude_patterns" json:"exclude_patterns"`

	// ExcludeDirs are directory names or relative paths never descended into.
	ExcludeDirs []string `yaml:"exclude_dirs" json:"exclude_dirs"`

	// ExcludeFiles are file paths, relative to the project, always skipped.
	ExcludeFiles []string `yaml:"exclude_files" json:"exclude_files"`

	// MaxFileSizeKB skips files larger than this many KiB.
	MaxFileSizeKB int `yaml:"max_file_size_kb" json:"max_file_size_kb"`

	// StopOnError aborts the run on the first unreadable or undecodable file.
	StopOnError bool `yaml:"stop_on_error" json:"stop_on_error"`

	// GenerateHeader emits the title header in the output document.
	GenerateHeader bool `yaml:"generate_header" json:"generate_header"`

	// GenerateTree emits a project structure section in the output document.
	GenerateTree bool `yaml:"generate_tree" json:"generate_tree"`

	// LanguageHints maps extensions or lower-case file names to fence languages.
	LanguageHints map[string]string `yaml:"language_hints" json:"language_hints"`

	// Verbose is set from the command line only.
	Verbose bool `yaml:"-" json:"-"`
}

// Overrides carries command-line values that take precedence over files.
type Overrides struct {
	OutputFile      string
	IncludePatterns []string
	ExcludePatterns []string
	NoHeader        bool
	Tree            bool
}

// Load reads the configuration for projectRoot. When path is empty the
// default candidates are probed in projectRoot. It returns the merged config,
// the path that was consulted and whether a file was actually loaded. A
// missing file is not an error; a malformed one is, and the defaults are
// returned alongside it.
func Load(projectRoot, path string) (*Config, string, bool, error) {
	cfg := Defaults()

	if path == "" {
		path = filepath.Join(projectRoot, DefaultConfigFilename)
		for _, name := range configCandidates {
			candidate := filepath.Join(projectRoot, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				path = candidate
				break
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, path, false, nil
		}
		return cfg, path, false, fmt.Errorf("failed to read config file: %w", err)
	}

	// Both decoders replace lists and merge into the existing language_hints
	// map, so user hints extend the defaults.
	loaded := Defaults()
	if err := decode(path, data, loaded); err != nil {
		return cfg, path, false, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, path, false, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return loaded, path, true, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration for values the scanner cannot use.
func (c *Config) Validate() error {
	if c.MaxFileSizeKB < 0 {
		return fmt.Errorf("max_file_size_kb must not be negative, got %d", c.MaxFileSizeKB)
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return errors.New("output_file must not be empty")
	}
	for key, list := range map[string][]string{
		"include_patterns": c.IncludePatterns,
		"exclude_patterns": c.ExcludePatterns,
		"exclude_dirs":     c.ExcludeDirs,
		"exclude_files":    c.ExcludeFiles,
	} {
		for i, v := range list {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%s[%d] must not be empty", key, i)
			}
		}
	}
	if _, err := scanner.NewMatcher(c.IncludePatterns, true); err != nil {
		return fmt.Errorf("include_patterns: %w", err)
	}
	if _, err := scanner.NewMatcher(c.ExcludePatterns, true); err != nil {
		return fmt.Errorf("exclude_patterns: %w", err)
	}
	return nil
}

// ApplyOverrides applies command-line values on top of the loaded config.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.OutputFile != "" {
		c.OutputFile = o.OutputFile
	}
	if len(o.IncludePatterns) > 0 {
		c.IncludePatterns = o.IncludePatterns
	}
	if len(o.ExcludePatterns) > 0 {
		c.ExcludePatterns = o.ExcludePatterns
	}
	if o.NoHeader {
		c.GenerateHeader = false
	}
	if o.Tree {
		c.GenerateTree = true
	}
}

// OutputPath returns the absolute output file path for projectRoot.
func (c *Config) OutputPath(projectRoot string) string {
	if filepath.IsAbs(c.OutputFile) {
		return filepath.Clean(c.OutputFile)
	}
	return filepath.Join(projectRoot, c.OutputFile)
}

// ScanConfig resolves the configuration into the scanner's input. Excluded
// files and the output file are resolved against projectRoot.
func (c *Config) ScanConfig(projectRoot string) scanner.ScanConfig {
	sc := scanner.ScanConfig{
		IncludePatterns:  append([]string(nil), c.IncludePatterns...),
		ExcludePatterns:  append([]string(nil), c.ExcludePatterns...),
		ExcludeDirs:      make(map[string]struct{}, len(c.ExcludeDirs)),
		ExcludeFiles:     make(map[string]struct{}, len(c.ExcludeFiles)+1),
		MaxFileSizeBytes: int64(c.MaxFileSizeKB) * 1024,
		CaseSensitive:    false,
		Verbose:          c.Verbose,
	}

	for _, d := range c.ExcludeDirs {
		d = strings.Trim(filepath.ToSlash(d), "/")
		if d != "" {
			sc.ExcludeDirs[d] = struct{}{}
		}
	}

	for _, f := range append(append([]string(nil), c.ExcludeFiles...), c.OutputFile) {
		p := f
		if !filepath.IsAbs(p) {
			p = filepath.Join(projectRoot, p)
		}
		if abs, err := scanner.ResolvePath(p); err == nil {
			sc.ExcludeFiles[abs] = struct{}{}
		}
	}
	return sc
}

// ClassifyOptions returns the classifier settings.
func (c *Config) ClassifyOptions() classify.Options {
	return classify.Options{StopOnError: c.StopOnError}
}
