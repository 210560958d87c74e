package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/p4th0r/pacbuild/internal/baseline"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	if cfg.AllowList != DefaultAllowList {
		t.Errorf("AllowList = %q, want %q", cfg.AllowList, DefaultAllowList)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.BaselineURL != baseline.DefaultURL {
		t.Errorf("BaselineURL = %q, want %q", cfg.BaselineURL, baseline.DefaultURL)
	}
	if cfg.FetchTimeout != DefaultFetchTimeout {
		t.Errorf("FetchTimeout = %d, want %d", cfg.FetchTimeout, DefaultFetchTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty allow-list path", func(c *Config) { c.AllowList = "" }, true},
		{"empty output path", func(c *Config) { c.Output = "" }, true},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }, true},
		{"negative timeout", func(c *Config) { c.FetchTimeout = -5 }, true},
		{"bad baseline url", func(c *Config) { c.BaselineURL = "not a url" }, true},
		{"ftp baseline url", func(c *Config) { c.BaselineURL = "ftp://example.com/x" }, true},
		{"bad url but dedup skipped", func(c *Config) {
			c.BaselineURL = "not a url"
			c.SkipDedup = true
		}, false},
		{"missing template dir", func(c *Config) { c.TemplateDir = "/no/such/dir" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateTemplateDirIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proxy.pac.tmpl")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := New()
	cfg.TemplateDir = path
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for template dir pointing at a file")
	}
}

func TestLoadFile(t *testing.T) {
	content := `allow_list: custom-allow.txt
output: out/proxy.pac
baseline_url: https://baseline.example.com/drdb.txt
fetch_timeout: 5
skip_dedup: true
`
	dir := t.TempDir()
	path := filepath.Join(dir, "pacbuild.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := New()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AllowList != "custom-allow.txt" {
		t.Errorf("AllowList = %q", cfg.AllowList)
	}
	if cfg.Output != "out/proxy.pac" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.BaselineURL != "https://baseline.example.com/drdb.txt" {
		t.Errorf("BaselineURL = %q", cfg.BaselineURL)
	}
	if cfg.FetchTimeout != 5 {
		t.Errorf("FetchTimeout = %d", cfg.FetchTimeout)
	}
	if !cfg.SkipDedup {
		t.Error("SkipDedup not applied")
	}
	// keys absent from the file keep their defaults
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", cfg.UserAgent)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := New()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("allow_list: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := New()
	if err := cfg.LoadFile(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
