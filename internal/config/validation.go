package config

import (
	"net/url"
	"strings"
)

// Validate validates the configuration.
func Validate(config *Config) error {
	return NewLoader().Validate(config)
}

// Validate validates the configuration.
func (l *ViperLoader) Validate(config *Config) error {
	if err := validateEndpoint("catalog.minecraft_url", config.Catalog.MinecraftURL); err != nil {
		return err
	}
	if err := validateEndpoint("catalog.skript_url", config.Catalog.SkriptURL); err != nil {
		return err
	}
	if config.Catalog.Timeout <= 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "catalog.timeout", "timeout must be positive")
	}
	if strings.TrimSpace(config.Git.Binary) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.binary", "git binary cannot be empty")
	}
	if strings.TrimSpace(config.Git.CommitMessage) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.commit_message", "commit message cannot be empty")
	}
	if strings.TrimSpace(config.Output.Dir) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "output.dir", "output directory cannot be empty")
	}
	return nil
}

func validateEndpoint(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", field, "must be an absolute http(s) URL")
	}
	return nil
}
