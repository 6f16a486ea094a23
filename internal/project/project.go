package project

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tacogips/skadd/internal/validate"
)

// Utility classes generated beside the main class.
const (
	LoggerClass     = "AddonLogger"
	ColorUtilsClass = "ColorUtils"
)

// MsgReservedAddonName is shown when the addon name matches a generated
// utility class.
const MsgReservedAddonName = "Addon name cannot be " + LoggerClass + " or " + ColorUtilsClass + "; those classes are generated with the addon."

// IsReservedAddonName reports whether name would put the main class in the
// same file as a generated utility class. Case is ignored so the tree stays
// valid on case-insensitive filesystems.
func IsReservedAddonName(name string) bool {
	return strings.EqualFold(name, LoggerClass) || strings.EqualFold(name, ColorUtilsClass)
}

// MainClass returns the fully qualified name of the plugin main class.
func (c Config) MainClass() string {
	return c.PackageName + "." + c.AddonName
}

// ElementsPackage returns the package holding the example Skript elements.
func (c Config) ElementsPackage() string {
	return c.PackageName + ".elements"
}

// RepoSlug returns the repository name derived from the addon name.
func (c Config) RepoSlug() string {
	return validate.ToSlug(c.AddonName)
}

// PackagePath returns the package segments, one per nested directory.
func (c Config) PackagePath() []string {
	return strings.Split(c.PackageName, ".")
}

// Versions lists the version identifiers a record may reference.
type Versions struct {
	Minecraft []string
	Skript    []string
}

// ValidationError describes the first field of a record that breaks an
// invariant.
type ValidationError struct {
	// Field is the yaml name of the offending field.
	Field string
	// Value is the rejected value.
	Value string
	// Message explains the rule.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// Validate checks every invariant of the record against the supplied version
// catalogs. Git fields are only checked when UseGit is set.
func (c Config) Validate(v Versions) error {
	if !validate.IsValidAddonName(c.AddonName) {
		return &ValidationError{Field: "addon_name", Value: c.AddonName, Message: validate.MsgInvalidAddonName}
	}
	if IsReservedAddonName(c.AddonName) {
		return &ValidationError{Field: "addon_name", Value: c.AddonName, Message: MsgReservedAddonName}
	}
	if !validate.IsValidPackageName(c.PackageName) {
		return &ValidationError{Field: "package_name", Value: c.PackageName, Message: validate.MsgInvalidPackageName}
	}
	if !c.Implementation.Valid() {
		return &ValidationError{Field: "implementation", Value: string(c.Implementation),
			Message: fmt.Sprintf("must be one of %v", Implementations())}
	}
	if !c.JavaVersion.Valid() {
		return &ValidationError{Field: "java_version", Value: string(c.JavaVersion),
			Message: fmt.Sprintf("must be one of %v", JavaVersions())}
	}
	if !slices.Contains(v.Minecraft, c.MCVersion) {
		return &ValidationError{Field: "mc_version", Value: c.MCVersion, Message: "not an available Minecraft version"}
	}
	if !slices.Contains(v.Skript, c.SkriptVersion) {
		return &ValidationError{Field: "skript_version", Value: c.SkriptVersion, Message: "not an available Skript version"}
	}

	if !c.UseGit {
		return nil
	}
	if !c.PrimaryBranch.Valid() {
		return &ValidationError{Field: "primary_branch", Value: string(c.PrimaryBranch),
			Message: fmt.Sprintf("must be one of %v", Branches())}
	}
	if c.InitNewRepo {
		if c.GitHubUser == "" {
			return &ValidationError{Field: "github_user", Value: c.GitHubUser, Message: validate.MsgEmptyUsername}
		}
		if want := validate.GitHubURL(c.GitHubUser, c.AddonName); c.GitURL != want {
			return &ValidationError{Field: "git_url", Value: c.GitURL,
				Message: fmt.Sprintf("must be %s for a new repository", want)}
		}
		return nil
	}
	if c.GitURL != "" && !validate.IsValidGitURL(c.GitURL) {
		return &ValidationError{Field: "git_url", Value: c.GitURL, Message: validate.MsgInvalidGitURL}
	}
	return nil
}

// Normalize fills derived fields and clears git fields that have no meaning
// for the chosen options. It returns the adjusted copy.
func (c Config) Normalize() Config {
	if !c.UseGit {
		c.InitNewRepo = false
		c.PrimaryBranch = ""
		c.GitHubUser = ""
		c.GitURL = ""
		return c
	}
	if c.PrimaryBranch == "" {
		c.PrimaryBranch = BranchMain
	}
	if c.InitNewRepo {
		if c.GitHubUser != "" && c.GitURL == "" {
			c.GitURL = validate.GitHubURL(c.GitHubUser, c.AddonName)
		}
	} else {
		c.GitHubUser = ""
	}
	return c
}
