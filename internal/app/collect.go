package app

import (
	"bytes"
	"context"
	"errors"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/tacogips/skadd/internal/catalog"
	"github.com/tacogips/skadd/internal/debug"
	"github.com/tacogips/skadd/internal/project"
	"github.com/tacogips/skadd/internal/wizard"
)

// Collect runs the interactive wizard over the resolved catalog.
// Interruption is returned as wizard.ErrInterrupted, unwrapped.
func Collect(ctx context.Context, prompter wizard.Prompter, cat catalog.Catalog) (project.Config, error) {
	debug.DebugSection("[app] Collect")

	cfg, err := wizard.New(Versions(cat)).Run(ctx, prompter)
	if err != nil {
		if errors.Is(err, wizard.ErrInterrupted) {
			return project.Config{}, wizard.ErrInterrupted
		}
		return project.Config{}, NewAppError(CollectFailed, "failed to collect project settings", err)
	}
	return cfg, nil
}

// LoadAnswers reads a YAML answers file in place of the wizard. Unknown
// keys are rejected and the record must satisfy every invariant the
// wizard enforces.
func LoadAnswers(path string, cat catalog.Catalog) (project.Config, error) {
	debug.DebugSection("[app] Load answers")
	debug.DebugValue("[app] Answers file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return project.Config{}, NewAppError(AnswersInvalid, "failed to read answers file", err)
	}
	return ParseAnswers(data, cat)
}

// ParseAnswers decodes and validates an answers document.
func ParseAnswers(data []byte, cat catalog.Catalog) (project.Config, error) {
	var cfg project.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return project.Config{}, NewAppError(AnswersInvalid, "invalid answers file", err)
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(Versions(cat)); err != nil {
		return project.Config{}, NewAppError(AnswersInvalid, "invalid answers file", err)
	}
	return cfg, nil
}
