package app

import (
	"context"

	"github.com/tacogips/skadd/internal/debug"
	"github.com/tacogips/skadd/internal/gitrepo"
	"github.com/tacogips/skadd/internal/project"
	"github.com/tacogips/skadd/internal/template/generator"
	"github.com/tacogips/skadd/internal/template/render"
)

// ScaffoldOptions configures one scaffold run.
type ScaffoldOptions struct {
	// OutputDir receives the <AddonName> root directory.
	OutputDir string
	// DryRun reports the planned tree without writing or running git.
	DryRun bool
	// CommitMessage is the initial commit message.
	CommitMessage string
	// Writer is the filesystem writer; a FileWriter when nil.
	Writer generator.Writer
	// GitRunner runs git; an ExecRunner when nil.
	GitRunner gitrepo.Runner
}

// ScaffoldResult holds the outcome of a scaffold run.
type ScaffoldResult struct {
	// Files describes the written (or planned) tree.
	Files *generator.GenerateResult
	// GitRequested is set when the record asked for a repository.
	GitRequested bool
	// GitSteps lists the bootstrap steps that completed.
	GitSteps []gitrepo.Step
	// GitErr is the bootstrap failure, if any. It does not fail the run.
	GitErr error
}

// Scaffold renders every artifact, writes the tree and, when requested,
// bootstraps git over it. Filesystem failures are returned as the error;
// git failures are only recorded in the result.
func Scaffold(ctx context.Context, cfg project.Config, opts ScaffoldOptions) (*ScaffoldResult, error) {
	debug.DebugSection("[app] Scaffold")
	debug.DebugValue("[app] Output directory", opts.OutputDir)
	debug.DebugValue("[app] Dry run", opts.DryRun)

	artifacts, err := render.RenderAll(cfg)
	if err != nil {
		return nil, NewAppError(RenderFailed, "failed to render project files", err)
	}

	writer := opts.Writer
	if writer == nil {
		writer = generator.NewFileWriter()
	}
	gen := generator.NewGeneratorWithWriter(writer)
	genOpts := generator.GenerateOptions{
		OutputDir: opts.OutputDir,
		Config:    cfg,
		Artifacts: artifacts,
	}

	result := &ScaffoldResult{GitRequested: cfg.UseGit}
	if opts.DryRun {
		result.Files, err = gen.DryRun(ctx, genOpts)
	} else {
		result.Files, err = gen.Generate(ctx, genOpts)
	}
	if err != nil {
		return nil, NewAppError(WriteFailed, "failed to write project files", err)
	}

	if !cfg.UseGit || opts.DryRun {
		return result, nil
	}

	runner := opts.GitRunner
	if runner == nil {
		runner = gitrepo.ExecRunner{}
	}
	result.GitSteps, result.GitErr = gitrepo.New(runner, writer).Bootstrap(ctx, gitrepo.Options{
		Dir:           result.Files.Root,
		Branch:        string(cfg.PrimaryBranch),
		RemoteURL:     cfg.GitURL,
		CommitMessage: opts.CommitMessage,
	})
	if result.GitErr != nil {
		debug.Debug("[app] Git bootstrap failed: %v", result.GitErr)
	}
	return result, nil
}
