package wizard

import (
	"errors"
	"fmt"

	"github.com/tacogips/skadd/internal/project"
	"github.com/tacogips/skadd/internal/validate"
)

// StepID identifies a wizard step.
type StepID int

const (
	StepAddonName StepID = iota
	StepPackageName
	StepImplementation
	StepJavaVersion
	StepMCVersion
	StepSkriptVersion
	StepUseGit
	StepInitNewRepo
	StepPrimaryBranch
	StepGitHubUser
	StepGitURL
	StepDone
)

// String returns the step name.
func (id StepID) String() string {
	switch id {
	case StepAddonName:
		return "addon-name"
	case StepPackageName:
		return "package-name"
	case StepImplementation:
		return "implementation"
	case StepJavaVersion:
		return "java-version"
	case StepMCVersion:
		return "mc-version"
	case StepSkriptVersion:
		return "skript-version"
	case StepUseGit:
		return "use-git"
	case StepInitNewRepo:
		return "init-new-repo"
	case StepPrimaryBranch:
		return "primary-branch"
	case StepGitHubUser:
		return "github-user"
	case StepGitURL:
		return "git-url"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("step(%d)", int(id))
	}
}

// Steps returns the addon wizard table.
func Steps(versions project.Versions) []Step {
	return []Step{
		{
			ID:       StepAddonName,
			Kind:     KindInput,
			Message:  fixed("Addon name (e.g. MySkriptAddon)"),
			Validate: func(s string) error {
				if !validate.IsValidAddonName(s) {
					return errors.New(validate.MsgInvalidAddonName)
				}
				if project.IsReservedAddonName(s) {
					return errors.New(project.MsgReservedAddonName)
				}
				return nil
			},
			Apply: func(c *project.Config, a Answer) { c.AddonName = a.Text },
			Next:     goTo(StepPackageName),
		},
		{
			ID:       StepPackageName,
			Kind:     KindInput,
			Message:  fixed("Base package (e.g. com.example.myaddon)"),
			Validate: check(validate.IsValidPackageName, validate.MsgInvalidPackageName),
			Apply:    func(c *project.Config, a Answer) { c.PackageName = a.Text },
			Next:     goTo(StepImplementation),
		},
		{
			ID:      StepImplementation,
			Kind:    KindSelect,
			Message: fixed("Implementation"),
			Options: func(*project.Config) []string { return toStrings(project.Implementations()) },
			Apply:   func(c *project.Config, a Answer) { c.Implementation = project.Implementation(a.Text) },
			Next:    goTo(StepJavaVersion),
		},
		{
			ID:      StepJavaVersion,
			Kind:    KindSelect,
			Message: fixed("Java version"),
			Options: func(*project.Config) []string { return toStrings(project.JavaVersions()) },
			Apply:   func(c *project.Config, a Answer) { c.JavaVersion = project.JavaVersion(a.Text) },
			Next:    goTo(StepMCVersion),
		},
		{
			ID:      StepMCVersion,
			Kind:    KindSelect,
			Message: fixed("Minecraft version"),
			Options: func(*project.Config) []string { return versions.Minecraft },
			Apply:   func(c *project.Config, a Answer) { c.MCVersion = a.Text },
			After:   javaWarning,
			Next:    goTo(StepSkriptVersion),
		},
		{
			ID:      StepSkriptVersion,
			Kind:    KindSelect,
			Message: fixed("Skript version"),
			Options: func(*project.Config) []string { return versions.Skript },
			Apply:   func(c *project.Config, a Answer) { c.SkriptVersion = a.Text },
			Next:    goTo(StepUseGit),
		},
		{
			ID:      StepUseGit,
			Kind:    KindConfirm,
			Message: fixed("Do you want to initialize Git repository?"),
			Apply:   func(c *project.Config, a Answer) { c.UseGit = a.Yes },
			Next: func(c *project.Config) StepID {
				if c.UseGit {
					return StepInitNewRepo
				}
				return StepDone
			},
		},
		{
			ID:      StepInitNewRepo,
			Kind:    KindConfirm,
			Message: fixed("Do you want to initialize a new repository on GitHub?"),
			Apply:   func(c *project.Config, a Answer) { c.InitNewRepo = a.Yes },
			Next:    goTo(StepPrimaryBranch),
		},
		{
			ID:      StepPrimaryBranch,
			Kind:    KindSelect,
			Message: fixed("Primary branch"),
			Options: func(*project.Config) []string { return toStrings(project.Branches()) },
			Apply:   func(c *project.Config, a Answer) { c.PrimaryBranch = project.Branch(a.Text) },
			Next: func(c *project.Config) StepID {
				if c.InitNewRepo {
					return StepGitHubUser
				}
				return StepGitURL
			},
		},
		{
			ID:   StepGitHubUser,
			Kind: KindInput,
			Before: func(c *project.Config) string {
				return "Repository name will be: " + c.RepoSlug()
			},
			Message: func(c *project.Config) string {
				return fmt.Sprintf("GitHub username (for https://github.com/<username>/%s.git)", c.RepoSlug())
			},
			Validate: func(s string) error {
				if s == "" {
					return errors.New(validate.MsgEmptyUsername)
				}
				return nil
			},
			Apply: func(c *project.Config, a Answer) {
				c.GitHubUser = a.Text
				c.GitURL = validate.GitHubURL(a.Text, c.AddonName)
			},
			Next: goTo(StepDone),
		},
		{
			ID:      StepGitURL,
			Kind:    KindInput,
			Message: fixed("Git URL (e.g. https://github.com/username/repo.git)"),
			Validate: func(s string) error {
				if s == "" || validate.IsValidGitURL(s) {
					return nil
				}
				return errors.New(validate.MsgInvalidGitURL)
			},
			Apply: func(c *project.Config, a Answer) { c.GitURL = a.Text },
			Next:  goTo(StepDone),
		},
	}
}

// javaWarning flags a Java release too old for the chosen server version.
func javaWarning(c *project.Config) string {
	required, tooOld := project.JavaTooOld(c.JavaVersion, c.MCVersion)
	if !tooOld {
		return ""
	}
	return fmt.Sprintf("Minecraft %s requires Java %s or newer; Java %s was selected.",
		c.MCVersion, required, c.JavaVersion)
}

func fixed(msg string) func(*project.Config) string {
	return func(*project.Config) string { return msg }
}

func goTo(id StepID) func(*project.Config) StepID {
	return func(*project.Config) StepID { return id }
}

func check(ok func(string) bool, msg string) func(string) error {
	return func(s string) error {
		if !ok(s) {
			return errors.New(msg)
		}
		return nil
	}
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
