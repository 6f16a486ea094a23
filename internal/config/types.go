package config

import "time"

// Config represents the skadd tool configuration.
type Config struct {
	// Catalog configures the version catalog sources.
	Catalog CatalogConfig `mapstructure:"catalog"`
	// Git configures repository bootstrapping.
	Git GitConfig `mapstructure:"git"`
	// Output configures display and generation output.
	Output OutputConfig `mapstructure:"output"`
}

// CatalogConfig represents version catalog settings.
type CatalogConfig struct {
	// MinecraftURL is the Paper project endpoint listing server versions.
	MinecraftURL string `mapstructure:"minecraft_url"`
	// SkriptURL is the GitHub releases endpoint for Skript.
	SkriptURL string `mapstructure:"skript_url"`
	// Timeout bounds each catalog request.
	Timeout time.Duration `mapstructure:"timeout"`
	// IncludePrereleases keeps pre-release versions in the catalogs.
	IncludePrereleases bool `mapstructure:"include_prereleases"`
	// GitHubToken authenticates release lookups (optional).
	GitHubToken string `mapstructure:"github_token"`
}

// GitConfig represents git bootstrap settings.
type GitConfig struct {
	// Binary is the git executable.
	Binary string `mapstructure:"binary"`
	// CommitMessage is the message of the initial commit.
	CommitMessage string `mapstructure:"commit_message"`
}

// OutputConfig represents output settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `mapstructure:"color"`
	// Dir is the directory receiving generated projects.
	Dir string `mapstructure:"dir"`
}
