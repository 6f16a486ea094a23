package gitrepo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tacogips/skadd/internal/debug"
)

// Runner executes one git command in a working directory.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) error
}

// ExecRunner runs git as a child process.
type ExecRunner struct {
	// Binary is the git executable, "git" when empty.
	Binary string
}

// Run executes the command and folds its stderr into the returned error.
func (r ExecRunner) Run(ctx context.Context, dir string, args ...string) error {
	bin := r.Binary
	if bin == "" {
		bin = "git"
	}
	debug.Debug("[gitrepo] %s %s (dir: %s)", bin, strings.Join(args, " "), dir)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}
