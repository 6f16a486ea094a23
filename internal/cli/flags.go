package cli

import (
	"os"
	"os/exec"
	"strings"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagOutput  = "output"
	FlagAnswers = "answers"
	FlagConfig  = "config"
	FlagDryRun  = "dry-run"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"
	FlagJSON    = "json"
	FlagShort   = "short"

	// Flag descriptions
	DescOutput  = "Directory that receives the addon project (default from config output.dir)"
	DescAnswers = "YAML answers file; skips the interactive wizard"
	DescConfig  = "Path to config file (default ~/.config/skadd/config.yaml)"
	DescDryRun  = "Show the files that would be written without writing them"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)

// resolveGitHubToken returns the token used for the releases API.
// Priority: configured token > GITHUB_TOKEN env > GH_TOKEN env > gh auth token.
func resolveGitHubToken(configured string) string {
	if configured != "" {
		return configured
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	if _, err := exec.LookPath("gh"); err == nil {
		output, err := exec.Command("gh", "auth", "token").Output()
		if err == nil {
			return strings.TrimSpace(string(output))
		}
	}

	return ""
}
