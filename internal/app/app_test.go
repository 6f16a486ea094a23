package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tacogips/skadd/internal/catalog"
	"github.com/tacogips/skadd/internal/config"
	"github.com/tacogips/skadd/internal/gitrepo"
	"github.com/tacogips/skadd/internal/project"
	"github.com/tacogips/skadd/internal/wizard"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		Minecraft: catalog.Resolution{Source: "minecraft", Versions: catalog.MinecraftFallback(), Fallback: true},
		Skript:    catalog.Resolution{Source: "skript", Versions: catalog.SkriptFallback(), Fallback: true},
	}
}

func testRecord() project.Config {
	return project.Config{
		AddonName:      "TestAddon",
		PackageName:    "com.test.addon",
		Implementation: project.ImplPaper,
		JavaVersion:    project.Java17,
		MCVersion:      "1.20.4",
		SkriptVersion:  "2.7.3",
	}
}

func TestResolveCatalog(t *testing.T) {
	paper := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"versions":["1.20.6","1.21"]}`)
	}))
	defer paper.Close()
	releases := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer releases.Close()

	cfg := config.DefaultConfig()
	cfg.Catalog.MinecraftURL = paper.URL
	cfg.Catalog.SkriptURL = releases.URL
	cfg.Catalog.Timeout = 2 * time.Second

	cat := ResolveCatalog(context.Background(), cfg, nil)
	if cat.Minecraft.Fallback || cat.Minecraft.Versions[0] != "1.21" {
		t.Errorf("Minecraft = %+v, want live newest-first list", cat.Minecraft)
	}
	if !cat.Skript.Fallback || len(cat.Skript.Versions) == 0 {
		t.Errorf("Skript = %+v, want fallback", cat.Skript)
	}

	v := Versions(cat)
	if len(v.Minecraft) != 2 || len(v.Skript) != len(catalog.SkriptFallback()) {
		t.Errorf("Versions() = %+v", v)
	}
}

func TestResolveCatalog_DefaultKeepsPrereleases(t *testing.T) {
	releases := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"tag_name":"2.9.0-pre1"},{"tag_name":"2.8.5"},{"tag_name":"v2.8.4"}]`)
	}))
	defer releases.Close()

	cfg := config.DefaultConfig()
	cfg.Catalog.SkriptURL = releases.URL
	cfg.Catalog.MinecraftURL = releases.URL

	cat := ResolveCatalog(context.Background(), cfg, nil)
	want := []string{"2.9.0-pre1", "2.8.5", "2.8.4"}
	if strings.Join(cat.Skript.Versions, ",") != strings.Join(want, ",") {
		t.Errorf("Skript = %v, want %v", cat.Skript.Versions, want)
	}
}

// answering replays wizard answers in order.
type answering struct{ answers []any }

func (a *answering) pop() any {
	v := a.answers[0]
	a.answers = a.answers[1:]
	return v
}

func (a *answering) Select(string, []string) (string, error) { return a.str() }
func (a *answering) Input(string) (string, error)            { return a.str() }
func (a *answering) Confirm(string) (bool, error) {
	v := a.pop()
	if err, ok := v.(error); ok {
		return false, err
	}
	return v.(bool), nil
}
func (a *answering) Notice(string) {}
func (a *answering) Reject(string) {}

func (a *answering) str() (string, error) {
	v := a.pop()
	if err, ok := v.(error); ok {
		return "", err
	}
	return v.(string), nil
}

func TestCollect(t *testing.T) {
	p := &answering{answers: []any{"TestAddon", "com.test.addon", "paper", "17", "1.20.4", "2.7.3", false}}

	cfg, err := Collect(context.Background(), p, testCatalog())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if cfg != testRecord() {
		t.Errorf("Collect() = %+v, want %+v", cfg, testRecord())
	}
}

func TestCollect_Interrupted(t *testing.T) {
	p := &answering{answers: []any{"TestAddon", fmt.Errorf("prompt: %w", wizard.ErrInterrupted)}}

	_, err := Collect(context.Background(), p, testCatalog())
	if err != wizard.ErrInterrupted {
		t.Errorf("Collect() error = %v, want bare ErrInterrupted", err)
	}
}

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    project.Config
		wantErr bool
	}{
		{
			name: "no git",
			doc: `
addon_name: TestAddon
package_name: com.test.addon
implementation: paper
java_version: "17"
mc_version: 1.20.4
skript_version: 2.7.3
use_git: false
`,
			want: testRecord(),
		},
		{
			name: "new repository derives url",
			doc: `
addon_name: MyCoolAddon
package_name: com.example.cool
implementation: leaf
java_version: "21"
mc_version: 1.20.4
skript_version: 2.7.3
use_git: true
init_new_repo: true
github_user: alice
`,
			want: project.Config{
				AddonName: "MyCoolAddon", PackageName: "com.example.cool", Implementation: project.ImplLeaf,
				JavaVersion: project.Java21, MCVersion: "1.20.4", SkriptVersion: "2.7.3",
				UseGit: true, InitNewRepo: true, PrimaryBranch: project.BranchMain,
				GitHubUser: "alice", GitURL: "https://github.com/alice/my-cool-addon.git",
			},
		},
		{
			name:    "version outside catalog",
			doc:     "addon_name: A\npackage_name: a\nimplementation: paper\njava_version: \"17\"\nmc_version: 1.8.8\nskript_version: 2.7.3\n",
			wantErr: true,
		},
		{
			name:    "bad addon name",
			doc:     "addon_name: 1A\npackage_name: a\nimplementation: paper\njava_version: \"17\"\nmc_version: 1.20.4\nskript_version: 2.7.3\n",
			wantErr: true,
		},
		{
			name:    "addon name of a generated class",
			doc:     "addon_name: ColorUtils\npackage_name: a\nimplementation: paper\njava_version: \"17\"\nmc_version: 1.20.4\nskript_version: 2.7.3\n",
			wantErr: true,
		},
		{
			name:    "unknown key",
			doc:     "addon_name: A\nflavor: vanilla\n",
			wantErr: true,
		},
		{
			name:    "empty document",
			doc:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnswers([]byte(tt.doc), testCatalog())
			if tt.wantErr {
				var appErr *AppError
				if !errors.As(err, &appErr) || appErr.Type != AnswersInvalid {
					t.Errorf("ParseAnswers() error = %v, want AnswersInvalid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAnswers() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseAnswers() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadAnswers_MissingFile(t *testing.T) {
	_, err := LoadAnswers(filepath.Join(t.TempDir(), "answers.yaml"), testCatalog())
	var appErr *AppError
	if !errors.As(err, &appErr) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadAnswers() error = %v, want AppError wrapping ErrNotExist", err)
	}
}

// recordingRunner records git invocations and optionally fails one.
type recordingRunner struct {
	failOn string
	calls  []string
}

func (r *recordingRunner) Run(_ context.Context, _ string, args ...string) error {
	r.calls = append(r.calls, strings.Join(args, " "))
	if args[0] == r.failOn {
		return errors.New("exit status 1")
	}
	return nil
}

func TestScaffold_NoGit(t *testing.T) {
	out := t.TempDir()
	runner := &recordingRunner{}

	res, err := Scaffold(context.Background(), testRecord(), ScaffoldOptions{OutputDir: out, GitRunner: runner})
	if err != nil {
		t.Fatalf("Scaffold() error = %v", err)
	}
	if res.GitRequested || len(runner.calls) != 0 {
		t.Errorf("git ran without being requested: %v", runner.calls)
	}
	if _, err := os.Stat(filepath.Join(out, "TestAddon", "build.gradle")); err != nil {
		t.Errorf("build.gradle missing: %v", err)
	}
}

func TestScaffold_GitFailureIsWarning(t *testing.T) {
	out := t.TempDir()
	rec := testRecord()
	rec.UseGit = true
	rec.PrimaryBranch = project.BranchMain
	runner := &recordingRunner{failOn: "commit"}

	res, err := Scaffold(context.Background(), rec, ScaffoldOptions{OutputDir: out, GitRunner: runner})
	if err != nil {
		t.Fatalf("Scaffold() error = %v, git failures must not fail the run", err)
	}

	var stepErr *gitrepo.StepError
	if !errors.As(res.GitErr, &stepErr) || stepErr.Step != gitrepo.StepCommit {
		t.Errorf("GitErr = %v, want commit step failure", res.GitErr)
	}
	if len(res.GitSteps) != 4 {
		t.Errorf("GitSteps = %v, want 4 completed", res.GitSteps)
	}
	if _, err := os.Stat(filepath.Join(out, "TestAddon", ".gitignore")); err != nil {
		t.Errorf(".gitignore missing: %v", err)
	}
}

func TestScaffold_DryRun(t *testing.T) {
	out := t.TempDir()
	rec := testRecord()
	rec.UseGit = true
	rec.PrimaryBranch = project.BranchMain
	runner := &recordingRunner{}

	res, err := Scaffold(context.Background(), rec, ScaffoldOptions{OutputDir: out, DryRun: true, GitRunner: runner})
	if err != nil {
		t.Fatalf("Scaffold() error = %v", err)
	}
	if !res.Files.DryRun || len(res.Files.Files) == 0 {
		t.Errorf("Files = %+v", res.Files)
	}
	if len(runner.calls) != 0 {
		t.Errorf("dry run ran git: %v", runner.calls)
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d entries", len(entries))
	}
}

func TestScaffold_WriteFailure(t *testing.T) {
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(out, "TestAddon"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Scaffold(context.Background(), testRecord(), ScaffoldOptions{OutputDir: out})
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Type != WriteFailed {
		t.Errorf("Scaffold() error = %v, want WriteFailed", err)
	}
}
