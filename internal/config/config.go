// Package config provides the unified configuration struct for pacbuild.
package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/p4th0r/pacbuild/internal/baseline"
)

// Defaults used when neither flags nor a config file say otherwise.
const (
	DefaultAllowList    = "allow-list.txt"
	DefaultOutput       = "proxy.pac"
	DefaultFetchTimeout = 10 // seconds
	DefaultUserAgent    = "pacbuild"
)

// Config holds all resolved settings for a pacbuild run. Fields map to
// CLI flags; the same fields can come from a YAML config file, with
// explicitly set flags taking precedence.
type Config struct {
	AllowList    string `yaml:"allow_list"`    // path to the domain allow-list
	Output       string `yaml:"output"`        // path for the generated PAC file
	TemplateDir  string `yaml:"template_dir"`  // optional proxy.pac.tmpl directory
	BaselineURL  string `yaml:"baseline_url"`  // pre-selected destinations URL
	FetchTimeout int    `yaml:"fetch_timeout"` // baseline fetch bound, in seconds
	UserAgent    string `yaml:"user_agent"`    // User-Agent for the baseline fetch

	SkipDedup      bool `yaml:"skip_dedup"`
	SkipValidation bool `yaml:"skip_validation"`

	// Console options, flags only
	Quiet   bool `yaml:"-"`
	Verbose bool `yaml:"-"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		AllowList:    DefaultAllowList,
		Output:       DefaultOutput,
		BaselineURL:  baseline.DefaultURL,
		FetchTimeout: DefaultFetchTimeout,
		UserAgent:    DefaultUserAgent,
	}
}

// LoadFile reads a YAML config file over the receiver's current values.
// Keys absent from the file keep their existing values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.AllowList == "" {
		return fmt.Errorf("allow-list path must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("timeout must be positive (got %d)", c.FetchTimeout)
	}

	if !c.SkipDedup {
		u, err := url.Parse(c.BaselineURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid baseline URL: %q", c.BaselineURL)
		}
	}

	if c.TemplateDir != "" {
		info, err := os.Stat(c.TemplateDir)
		if err != nil {
			return fmt.Errorf("template directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("template directory %q is not a directory", c.TemplateDir)
		}
	}

	return nil
}
