// Package validate holds the pure checks and normalizations applied to
// operator input: addon names, Java package names, git URLs, and the
// repository slug derived from an addon name.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// Rejection messages shown when the wizard re-prompts.
const (
	MsgInvalidAddonName   = "Addon name must contain only letters and numbers and start with a letter."
	MsgInvalidPackageName = "Package name must be in format com.example.myaddon"
	MsgInvalidGitURL      = "Invalid Git URL. Use format https://github.com/username/repo.git or git@github.com:username/repo.git"
	MsgEmptyUsername      = "You must enter a GitHub username."
)

// Git URL patterns
var (
	gitHTTPSPattern      = regexp.MustCompile(`^https?://(?:[\w-]+\.)+[\w-]+(?:/[\w-]+)*\.git$`)
	gitSSHPattern        = regexp.MustCompile(`^git@(?:[\w-]+\.)+[\w-]+:[\w-]+/[\w-]+\.git$`)
	gitHTTPSNoSuffixPatt = regexp.MustCompile(`^https?://(?:[\w-]+\.)+[\w-]+(?:/[\w-]+)*$`)
)

// Slug patterns
var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns    = regexp.MustCompile(`-+`)
)

// IsValidAddonName reports whether s is non-empty, purely alphanumeric and
// starts with a letter.
func IsValidAddonName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !isAlnum(r) {
			return false
		}
	}
	return true
}

// IsValidPackageName reports whether every dot-separated segment of s is a
// non-empty alphanumeric string. A single segment without dots is accepted.
// Segments may start with a digit.
func IsValidPackageName(s string) bool {
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			return false
		}
		for _, r := range seg {
			if !isAlnum(r) {
				return false
			}
		}
	}
	return true
}

// ToSlug converts a human-readable name into a lowercase, hyphen-separated
// identifier usable as a repository name.
//
//	ToSlug("MySkriptAddon") == "my-skript-addon"
//	ToSlug("Cool Addon!!")  == "cool-addon"
func ToSlug(name string) string {
	s := camelBoundary.ReplaceAllString(name, "$1-$2")
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidGitURL reports whether s is an HTTPS URL (with or without a .git
// suffix) or an SSH shorthand such as git@github.com:user/repo.git.
// Callers treat the empty string as "not provided" before calling this.
func IsValidGitURL(s string) bool {
	return gitHTTPSPattern.MatchString(s) ||
		gitSSHPattern.MatchString(s) ||
		gitHTTPSNoSuffixPatt.MatchString(s)
}

// GitHubURL builds the HTTPS clone URL for a new repository named after the
// addon.
func GitHubURL(user, addonName string) string {
	return "https://github.com/" + user + "/" + ToSlug(addonName) + ".git"
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
