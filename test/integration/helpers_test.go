package integration

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacogips/skadd/internal/app"
	"github.com/tacogips/skadd/internal/catalog"
	"github.com/tacogips/skadd/internal/project"
)

// fallbackCatalog is the catalog used when both version services are down.
func fallbackCatalog() catalog.Catalog {
	return catalog.Catalog{
		Minecraft: catalog.Resolution{Source: "minecraft", Versions: catalog.MinecraftFallback(), Fallback: true},
		Skript:    catalog.Resolution{Source: "skript", Versions: catalog.SkriptFallback(), Fallback: true},
	}
}

// loadFixture reads an answers file from ../fixtures/answers.
func loadFixture(t *testing.T, name string) project.Config {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("../fixtures/answers", name))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}
	cfg, err := app.LoadAnswers(path, fallbackCatalog())
	if err != nil {
		t.Fatalf("LoadAnswers(%s) error = %v", name, err)
	}
	return cfg
}

// requireGit skips the test without a git binary and isolates git from the
// user's global configuration.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "skadd")
	t.Setenv("GIT_AUTHOR_EMAIL", "skadd@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "skadd")
	t.Setenv("GIT_COMMITTER_EMAIL", "skadd@example.com")
}

// gitOutput runs a read-only git command in dir.
func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := exec.Command("git", append([]string{"-C", dir}, args...)...).Output()
	if err != nil {
		t.Fatalf("git %s: %v", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out))
}
