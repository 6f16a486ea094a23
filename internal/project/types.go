// Package project defines the configuration record collected by the wizard
// and consumed, read-only, by the renderer and the scaffold generator.
package project

// Implementation is the server implementation the addon targets.
type Implementation string

const (
	ImplPaper  Implementation = "paper"
	ImplPurpur Implementation = "purpur"
	ImplSpigot Implementation = "spigot"
	ImplLeaf   Implementation = "leaf"
)

// JavaVersion is the Java toolchain release used to compile the addon.
type JavaVersion string

const (
	Java8  JavaVersion = "8"
	Java11 JavaVersion = "11"
	Java17 JavaVersion = "17"
	Java21 JavaVersion = "21"
)

// Branch is the primary branch name of a bootstrapped repository.
type Branch string

const (
	BranchMain        Branch = "main"
	BranchMaster      Branch = "master"
	BranchDev         Branch = "dev"
	BranchDevelopment Branch = "development"
)

// Implementations returns the selectable implementations in prompt order.
func Implementations() []Implementation {
	return []Implementation{ImplPaper, ImplPurpur, ImplSpigot, ImplLeaf}
}

// JavaVersions returns the selectable Java releases in prompt order.
func JavaVersions() []JavaVersion {
	return []JavaVersion{Java8, Java11, Java17, Java21}
}

// Branches returns the selectable primary branches in prompt order.
func Branches() []Branch {
	return []Branch{BranchMain, BranchMaster, BranchDev, BranchDevelopment}
}

// Valid reports whether i is one of the supported implementations.
func (i Implementation) Valid() bool {
	for _, v := range Implementations() {
		if v == i {
			return true
		}
	}
	return false
}

// Valid reports whether j is one of the supported Java releases.
func (j JavaVersion) Valid() bool {
	for _, v := range JavaVersions() {
		if v == j {
			return true
		}
	}
	return false
}

// Valid reports whether b is one of the supported branch names.
func (b Branch) Valid() bool {
	for _, v := range Branches() {
		if v == b {
			return true
		}
	}
	return false
}

// Config is the finalized set of answers describing one addon project.
// It is built once and passed by value afterwards.
type Config struct {
	// AddonName is the plugin name, main class name and root directory name.
	AddonName string `yaml:"addon_name" json:"addon_name"`
	// PackageName is the base Java package, e.g. com.example.myaddon.
	PackageName string `yaml:"package_name" json:"package_name"`
	// Implementation is the server implementation.
	Implementation Implementation `yaml:"implementation" json:"implementation"`
	// JavaVersion is the Java toolchain release.
	JavaVersion JavaVersion `yaml:"java_version" json:"java_version"`
	// MCVersion is the Minecraft server version (also the plugin api-version).
	MCVersion string `yaml:"mc_version" json:"mc_version"`
	// SkriptVersion is the Skript dependency version.
	SkriptVersion string `yaml:"skript_version" json:"skript_version"`

	// UseGit requests a git repository over the generated tree.
	UseGit bool `yaml:"use_git" json:"use_git"`
	// InitNewRepo selects a new GitHub repository (URL derived from the slug)
	// over an existing remote URL.
	InitNewRepo bool `yaml:"init_new_repo,omitempty" json:"init_new_repo,omitempty"`
	// PrimaryBranch is the branch created by the bootstrapper.
	PrimaryBranch Branch `yaml:"primary_branch,omitempty" json:"primary_branch,omitempty"`
	// GitHubUser is the owner of the new repository when InitNewRepo is set.
	GitHubUser string `yaml:"github_user,omitempty" json:"github_user,omitempty"`
	// GitURL is the remote registered as origin. Empty means no remote.
	GitURL string `yaml:"git_url,omitempty" json:"git_url,omitempty"`
}
