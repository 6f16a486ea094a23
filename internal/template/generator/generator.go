package generator

import (
	"context"
	"path/filepath"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/tacogips/skadd/internal/debug"
	"github.com/tacogips/skadd/internal/project"
	"github.com/tacogips/skadd/internal/template/render"
)

// maxParallelWrites bounds concurrent file writes.
const maxParallelWrites = 4

// Generator materializes rendered artifacts as a scaffold tree.
type Generator interface {
	// Generate creates every directory, then writes every artifact,
	// overwriting existing files.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)

	// DryRun reports what Generate would do without touching the filesystem.
	DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures scaffold generation.
type GenerateOptions struct {
	// OutputDir is the directory that receives the <AddonName> root.
	OutputDir string

	// Config is the finalized project record.
	Config project.Config

	// Artifacts are the rendered file bodies, one per kind.
	Artifacts []render.Artifact
}

// GenerateResult contains generation statistics.
type GenerateResult struct {
	// Root is the scaffold root directory.
	Root string

	// Files lists the written paths relative to Root, sorted.
	Files []string

	// Directories lists the directories created (or that would be), parents first.
	Directories []string

	// FilesOverwritten is the number of files that already existed.
	FilesOverwritten int

	// Bytes is the total size of all written content.
	Bytes int64

	// DryRun is set when nothing was written.
	DryRun bool
}

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	writer Writer
}

// NewGenerator creates a generator writing to the local filesystem.
func NewGenerator() Generator {
	return &DefaultGenerator{writer: NewFileWriter()}
}

// NewGeneratorWithWriter creates a generator over a custom Writer.
func NewGeneratorWithWriter(w Writer) Generator {
	return &DefaultGenerator{writer: w}
}

// Generate writes the scaffold.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, false)
}

// DryRun simulates scaffold generation.
func (g *DefaultGenerator) DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, true)
}

type plannedFile struct {
	path    string
	rel     string
	content []byte
}

func (g *DefaultGenerator) generate(ctx context.Context, opts GenerateOptions, dryRun bool) (*GenerateResult, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	layout := NewLayout(opts.OutputDir, opts.Config)
	debug.Debug("[generator] Starting generation: root=%s, artifacts=%d, dryRun=%v",
		layout.Root, len(opts.Artifacts), dryRun)

	plan, err := planFiles(layout, opts.Artifacts)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Root:        layout.Root,
		Directories: layout.Dirs(),
		DryRun:      dryRun,
	}
	for _, f := range plan {
		result.Files = append(result.Files, f.rel)
		result.Bytes += int64(len(f.content))
	}
	slices.Sort(result.Files)

	if dryRun {
		for _, f := range plan {
			if g.writer.Exists(f.path) {
				result.FilesOverwritten++
			}
		}
		debug.Debug("[generator] Dry run: %d files, %d directories", len(result.Files), len(result.Directories))
		return result, nil
	}

	// Every directory exists before any write starts.
	for _, dir := range result.Directories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.writer.CreateDir(dir); err != nil {
			return nil, err
		}
	}

	var overwritten atomic.Int32
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelWrites)
	for _, f := range plan {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if g.writer.Exists(f.path) {
				overwritten.Add(1)
				debug.Debug("[generator] Overwriting file: %s", f.rel)
			}
			return g.writer.WriteFile(f.path, f.content)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	result.FilesOverwritten = int(overwritten.Load())

	debug.Debug("[generator] Generation complete: files=%d, overwritten=%d, bytes=%d",
		len(result.Files), result.FilesOverwritten, result.Bytes)
	return result, nil
}

// planFiles assigns each artifact its path, rejecting unknown kinds and
// duplicate destinations.
func planFiles(layout Layout, artifacts []render.Artifact) ([]plannedFile, error) {
	seen := make(map[string]render.Kind, len(artifacts))
	plan := make([]plannedFile, 0, len(artifacts))
	for _, a := range artifacts {
		rel, ok := layout.Rel(a.Kind)
		if !ok {
			return nil, newGeneratorError(GeneratorPathError, "no layout path for artifact "+a.Kind.String(), "", nil)
		}
		if prev, dup := seen[rel]; dup {
			return nil, newGeneratorError(GeneratorPathError,
				"artifacts "+prev.String()+" and "+a.Kind.String()+" share a path", rel, nil)
		}
		seen[rel] = a.Kind
		plan = append(plan, plannedFile{
			path:    filepath.Join(layout.Root, rel),
			rel:     filepath.ToSlash(rel),
			content: a.Content,
		})
	}
	return plan, nil
}

// validateOptions validates GenerateOptions.
func validateOptions(opts GenerateOptions) error {
	if opts.OutputDir == "" {
		return newGeneratorError(GeneratorInvalidOptions, "output directory cannot be empty", "", nil)
	}
	if opts.Config.AddonName == "" || opts.Config.PackageName == "" {
		return newGeneratorError(GeneratorInvalidOptions, "addon and package names are required", "", nil)
	}
	if len(opts.Artifacts) == 0 {
		return newGeneratorError(GeneratorInvalidOptions, "no artifacts to write", "", nil)
	}
	return nil
}
