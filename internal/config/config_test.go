package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tacogips/skadd/internal/catalog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Catalog.MinecraftURL", cfg.Catalog.MinecraftURL, catalog.DefaultMinecraftURL},
		{"Catalog.SkriptURL", cfg.Catalog.SkriptURL, catalog.DefaultSkriptURL},
		{"Catalog.Timeout", cfg.Catalog.Timeout, 10 * time.Second},
		{"Catalog.IncludePrereleases", cfg.Catalog.IncludePrereleases, true},
		{"Git.Binary", cfg.Git.Binary, "git"},
		{"Git.CommitMessage", cfg.Git.CommitMessage, "Initial commit"},
		{"Output.Color", cfg.Output.Color, true},
		{"Output.Dir", cfg.Output.Dir, "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("default configuration is invalid: %v", err)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadOrDefault() = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
catalog:
  timeout: 3s
  include_prereleases: false
git:
  commit_message: "chore: scaffold"
output:
  dir: /tmp/addons
  color: false
`)

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Catalog.Timeout)
	}
	if cfg.Catalog.IncludePrereleases {
		t.Error("IncludePrereleases should be false")
	}
	if cfg.Git.CommitMessage != "chore: scaffold" {
		t.Errorf("CommitMessage = %q", cfg.Git.CommitMessage)
	}
	if cfg.Output.Dir != "/tmp/addons" || cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Catalog.MinecraftURL != catalog.DefaultMinecraftURL {
		t.Errorf("unset key lost its default: %q", cfg.Catalog.MinecraftURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(*Config) any
		want   any
	}{
		{"timeout", "SKADD_CATALOG_TIMEOUT", "250ms", func(c *Config) any { return c.Catalog.Timeout }, 250 * time.Millisecond},
		{"token", "SKADD_CATALOG_GITHUB_TOKEN", "ghp_x", func(c *Config) any { return c.Catalog.GitHubToken }, "ghp_x"},
		{"prereleases", "SKADD_CATALOG_INCLUDE_PRERELEASES", "false", func(c *Config) any { return c.Catalog.IncludePrereleases }, false},
		{"git binary", "SKADD_GIT_BINARY", "/usr/bin/git", func(c *Config) any { return c.Git.Binary }, "/usr/bin/git"},
		{"output dir", "SKADD_OUTPUT_DIR", "/srv/out", func(c *Config) any { return c.Output.Dir }, "/srv/out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := NewLoader().LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
			if err != nil {
				t.Fatalf("LoadOrDefault() error = %v", err)
			}
			if got := tt.field(cfg); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SKADD_OUTPUT_COLOR", "false")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Output.Color {
		t.Error("Output.Color = true, want false from SKADD_OUTPUT_COLOR")
	}
	if cfg.Git.Binary != "git" {
		t.Errorf("Git.Binary = %q, want default", cfg.Git.Binary)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := writeConfig(t, "output:\n  dir: from-file\n")
	t.Setenv("SKADD_OUTPUT_DIR", "from-env")

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Dir != "from-env" {
		t.Errorf("Output.Dir = %q, want from-env", cfg.Output.Dir)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		missing   bool
		wantType  ConfigErrorType
		wantField string
	}{
		{name: "missing file", missing: true, wantType: ConfigNotFound},
		{name: "bad yaml", content: "catalog: [unclosed", wantType: ConfigInvalid},
		{name: "bad timeout", content: "catalog:\n  timeout: soon\n", wantType: ConfigInvalid},
		{name: "zero timeout", content: "catalog:\n  timeout: 0s\n", wantType: ConfigValidationFailed, wantField: "catalog.timeout"},
		{name: "relative url", content: "catalog:\n  skript_url: /releases\n", wantType: ConfigValidationFailed, wantField: "catalog.skript_url"},
		{name: "empty binary", content: "git:\n  binary: \"\"\n", wantType: ConfigValidationFailed, wantField: "git.binary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tt.missing {
				path = writeConfig(t, tt.content)
			}

			_, err := NewLoader().Load(path)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Load() error = %v, want *ConfigError", err)
			}
			if cfgErr.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", cfgErr.Type, tt.wantType)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestLoadOrDefault_InvalidFileIsError(t *testing.T) {
	path := writeConfig(t, "catalog: [unclosed")
	if _, err := NewLoader().LoadOrDefault(path); err == nil {
		t.Error("LoadOrDefault() should not hide a broken file")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/addons")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != filepath.Join(home, "addons") {
		t.Errorf("ExpandPath(~/addons) = %q", got)
	}

	if got, _ := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want empty", got)
	}

	got, err = ExpandPath("rel")
	if err != nil || !filepath.IsAbs(got) {
		t.Errorf("ExpandPath(rel) = %q, %v; want absolute", got, err)
	}
}
