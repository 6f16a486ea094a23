// Package gitrepo turns a freshly written scaffold into a git repository
// with one initial commit.
package gitrepo

import (
	"context"
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/tacogips/skadd/internal/debug"
	"github.com/tacogips/skadd/internal/template/generator"
)

// DefaultCommitMessage is the message of the initial commit.
const DefaultCommitMessage = "Initial commit"

//go:embed gitignore
var ignoreRules []byte

// IgnoreRules returns the content written to .gitignore.
func IgnoreRules() []byte {
	return append([]byte(nil), ignoreRules...)
}

// Step is one bootstrap operation.
type Step string

const (
	StepInit   Step = "init"
	StepBranch Step = "branch"
	StepRemote Step = "remote"
	StepIgnore Step = "ignore"
	StepAdd    Step = "add"
	StepCommit Step = "commit"
)

// StepError reports the step that failed. Steps before it stay applied.
type StepError struct {
	// Step is the failed step.
	Step Step
	// Completed lists the steps that succeeded, in order.
	Completed []Step
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("git %s failed: %v", e.Step, e.Cause)
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *StepError) Unwrap() error {
	return e.Cause
}

// Options configures one bootstrap run.
type Options struct {
	// Dir is the scaffold root.
	Dir string
	// Branch is the primary branch name.
	Branch string
	// RemoteURL is registered as origin when non-empty.
	RemoteURL string
	// CommitMessage overrides DefaultCommitMessage.
	CommitMessage string
}

// Bootstrapper runs the fixed git command sequence.
type Bootstrapper struct {
	runner Runner
	writer generator.Writer
}

// New creates a Bootstrapper.
func New(runner Runner, writer generator.Writer) *Bootstrapper {
	return &Bootstrapper{runner: runner, writer: writer}
}

type action struct {
	step Step
	run  func(ctx context.Context) error
}

// Bootstrap runs init, branch rename, optional remote, ignore file, add and
// commit in that order. The first failure stops the sequence; nothing is
// rolled back. It returns the completed steps either way.
func (b *Bootstrapper) Bootstrap(ctx context.Context, opts Options) ([]Step, error) {
	debug.DebugSection("Git bootstrap")

	if opts.Dir == "" || opts.Branch == "" {
		return nil, fmt.Errorf("gitrepo: directory and branch are required")
	}
	message := opts.CommitMessage
	if message == "" {
		message = DefaultCommitMessage
	}

	git := func(args ...string) func(context.Context) error {
		return func(ctx context.Context) error { return b.runner.Run(ctx, opts.Dir, args...) }
	}

	actions := []action{
		{StepInit, git("init")},
		{StepBranch, git("branch", "-M", opts.Branch)},
	}
	if opts.RemoteURL != "" {
		actions = append(actions, action{StepRemote, git("remote", "add", "origin", opts.RemoteURL)})
	}
	actions = append(actions,
		action{StepIgnore, func(context.Context) error {
			return b.writer.WriteFile(filepath.Join(opts.Dir, ".gitignore"), ignoreRules)
		}},
		action{StepAdd, git("add", ".")},
		action{StepCommit, git("commit", "-m", message)},
	)

	completed := make([]Step, 0, len(actions))
	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return completed, &StepError{Step: a.step, Completed: completed, Cause: err}
		}
		if err := a.run(ctx); err != nil {
			debug.Debug("[gitrepo] step %s failed: %v", a.step, err)
			return completed, &StepError{Step: a.step, Completed: completed, Cause: err}
		}
		completed = append(completed, a.step)
	}
	return completed, nil
}
