package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tacogips/skadd/internal/template/generator"
)

// fakeRunner records commands and fails the one whose first argument
// matches failOn.
type fakeRunner struct {
	failOn string
	calls  [][]string
	dirs   []string
}

func (f *fakeRunner) Run(_ context.Context, dir string, args ...string) error {
	f.calls = append(f.calls, args)
	f.dirs = append(f.dirs, dir)
	if args[0] == f.failOn {
		return errors.New("exit status 128")
	}
	return nil
}

func TestBootstrap_Sequence(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantCalls [][]string
		wantSteps []Step
	}{
		{
			name: "with remote",
			opts: Options{Branch: "main", RemoteURL: "https://github.com/alice/my-addon.git"},
			wantCalls: [][]string{
				{"init"},
				{"branch", "-M", "main"},
				{"remote", "add", "origin", "https://github.com/alice/my-addon.git"},
				{"add", "."},
				{"commit", "-m", "Initial commit"},
			},
			wantSteps: []Step{StepInit, StepBranch, StepRemote, StepIgnore, StepAdd, StepCommit},
		},
		{
			name: "without remote",
			opts: Options{Branch: "dev", CommitMessage: "Scaffold"},
			wantCalls: [][]string{
				{"init"},
				{"branch", "-M", "dev"},
				{"add", "."},
				{"commit", "-m", "Scaffold"},
			},
			wantSteps: []Step{StepInit, StepBranch, StepIgnore, StepAdd, StepCommit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.opts.Dir = dir
			runner := &fakeRunner{}

			steps, err := New(runner, generator.NewFileWriter()).Bootstrap(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("Bootstrap() error = %v", err)
			}
			if !reflect.DeepEqual(runner.calls, tt.wantCalls) {
				t.Errorf("calls = %v, want %v", runner.calls, tt.wantCalls)
			}
			if !reflect.DeepEqual(steps, tt.wantSteps) {
				t.Errorf("steps = %v, want %v", steps, tt.wantSteps)
			}
			for _, d := range runner.dirs {
				if d != dir {
					t.Errorf("command ran in %q, want %q", d, dir)
				}
			}

			got, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
			if err != nil {
				t.Fatalf(".gitignore not written: %v", err)
			}
			if !bytes.Equal(got, IgnoreRules()) {
				t.Errorf(".gitignore content mismatch")
			}
		})
	}
}

func TestBootstrap_StopsAtFirstFailure(t *testing.T) {
	tests := []struct {
		failOn        string
		wantStep      Step
		wantCompleted []Step
		wantCalls     int
		wantIgnore    bool
	}{
		{"init", StepInit, []Step{}, 1, false},
		{"branch", StepBranch, []Step{StepInit}, 2, false},
		{"remote", StepRemote, []Step{StepInit, StepBranch}, 3, false},
		{"add", StepAdd, []Step{StepInit, StepBranch, StepRemote, StepIgnore}, 4, true},
		{"commit", StepCommit, []Step{StepInit, StepBranch, StepRemote, StepIgnore, StepAdd}, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.failOn, func(t *testing.T) {
			dir := t.TempDir()
			runner := &fakeRunner{failOn: tt.failOn}

			steps, err := New(runner, generator.NewFileWriter()).Bootstrap(context.Background(), Options{
				Dir: dir, Branch: "main", RemoteURL: "git@github.com:a/b.git",
			})

			var stepErr *StepError
			if !errors.As(err, &stepErr) {
				t.Fatalf("Bootstrap() error = %v, want *StepError", err)
			}
			if stepErr.Step != tt.wantStep {
				t.Errorf("Step = %s, want %s", stepErr.Step, tt.wantStep)
			}
			if !reflect.DeepEqual(steps, tt.wantCompleted) || !reflect.DeepEqual(stepErr.Completed, tt.wantCompleted) {
				t.Errorf("completed = %v / %v, want %v", steps, stepErr.Completed, tt.wantCompleted)
			}
			if len(runner.calls) != tt.wantCalls {
				t.Errorf("ran %d commands, want %d", len(runner.calls), tt.wantCalls)
			}
			_, statErr := os.Stat(filepath.Join(dir, ".gitignore"))
			if (statErr == nil) != tt.wantIgnore {
				t.Errorf(".gitignore present = %v, want %v", statErr == nil, tt.wantIgnore)
			}
		})
	}
}

func TestBootstrap_IgnoreWriteFailure(t *testing.T) {
	runner := &fakeRunner{}
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := New(runner, generator.NewFileWriter()).Bootstrap(context.Background(), Options{Dir: missing, Branch: "main"})
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepIgnore {
		t.Fatalf("Bootstrap() error = %v, want ignore step failure", err)
	}
	if len(runner.calls) != 2 {
		t.Errorf("ran %d commands after ignore failure, want 2", len(runner.calls))
	}
}

func TestBootstrap_RequiresDirAndBranch(t *testing.T) {
	b := New(&fakeRunner{}, generator.NewFileWriter())
	if _, err := b.Bootstrap(context.Background(), Options{Branch: "main"}); err == nil {
		t.Error("Bootstrap() without dir should fail")
	}
	if _, err := b.Bootstrap(context.Background(), Options{Dir: t.TempDir()}); err == nil {
		t.Error("Bootstrap() without branch should fail")
	}
}

func TestIgnoreRules(t *testing.T) {
	rules := string(IgnoreRules())
	for _, want := range []string{".gradle/", "build/", ".idea/", "*.class", "*.log", ".DS_Store"} {
		if !strings.Contains(rules, want) {
			t.Errorf("ignore rules missing %q", want)
		}
	}
}

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	if err := (ExecRunner{}).Run(context.Background(), t.TempDir(), "--version"); err != nil {
		t.Errorf("git --version error = %v", err)
	}

	err := (ExecRunner{}).Run(context.Background(), t.TempDir(), "not-a-git-command")
	if err == nil || !strings.Contains(err.Error(), "git not-a-git-command") {
		t.Errorf("Run() error = %v, want wrapped git failure", err)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	err := (ExecRunner{Binary: "skadd-no-such-git"}).Run(context.Background(), t.TempDir(), "init")
	if err == nil {
		t.Error("Run() with a missing binary should fail")
	}
}
