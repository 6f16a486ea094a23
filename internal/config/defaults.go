package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tacogips/skadd/internal/catalog"
	"github.com/tacogips/skadd/internal/gitrepo"
)

// EnvPrefix prefixes every environment override, e.g. SKADD_CATALOG_TIMEOUT.
const EnvPrefix = "SKADD"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			MinecraftURL:       catalog.DefaultMinecraftURL,
			SkriptURL:          catalog.DefaultSkriptURL,
			Timeout:            catalog.DefaultTimeout,
			IncludePrereleases: true,
		},
		Git: GitConfig{
			Binary:        "git",
			CommitMessage: gitrepo.DefaultCommitMessage,
		},
		Output: OutputConfig{
			Color: true,
			Dir:   ".",
		},
	}
}

// setDefaults registers every key with its default so environment
// overrides apply to all of them.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("catalog.minecraft_url", d.Catalog.MinecraftURL)
	v.SetDefault("catalog.skript_url", d.Catalog.SkriptURL)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("catalog.include_prereleases", d.Catalog.IncludePrereleases)
	v.SetDefault("catalog.github_token", d.Catalog.GitHubToken)
	v.SetDefault("git.binary", d.Git.Binary)
	v.SetDefault("git.commit_message", d.Git.CommitMessage)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.dir", d.Output.Dir)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "skadd", "config.yaml")
}
