// Package wizard collects a project.Config through a fixed, data-driven
// sequence of prompts.
//
// Each Step describes one question: how it is asked, how the answer is
// validated and applied, and which step follows given the answers so far.
// Run drives the table with a single loop over a Prompter, so the flow can
// be exercised without a terminal.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tacogips/skadd/internal/debug"
	"github.com/tacogips/skadd/internal/project"
)

// ErrInterrupted is returned when the operator cancels a prompt.
var ErrInterrupted = errors.New("operation was interrupted by user")

// Prompter asks single questions and blocks until they are answered.
// Implementations return ErrInterrupted (possibly wrapped) on cancellation.
type Prompter interface {
	// Select asks for one of options.
	Select(message string, options []string) (string, error)
	// Input asks for free text.
	Input(message string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(message string) (bool, error)
	// Notice shows an informational line between questions.
	Notice(message string)
	// Reject explains why the previous answer was refused.
	Reject(message string)
}

// Kind is how a step is asked.
type Kind int

const (
	// KindInput asks for free text.
	KindInput Kind = iota
	// KindSelect asks for one of a bounded set of options.
	KindSelect
	// KindConfirm asks a yes/no question.
	KindConfirm
)

// Answer holds the operator's response to one step.
type Answer struct {
	// Text is the typed or selected value (input and select steps).
	Text string
	// Yes is the response to a confirm step.
	Yes bool
}

// Step describes one question of the wizard.
type Step struct {
	// ID identifies the step.
	ID StepID
	// Kind selects the prompt type.
	Kind Kind
	// Message builds the prompt text from the answers so far.
	Message func(cfg *project.Config) string
	// Options lists the choices of a select step.
	Options func(cfg *project.Config) []string
	// Validate rejects an input answer with the message to show. Nil accepts
	// everything.
	Validate func(answer string) error
	// Before optionally returns a notice shown before the question.
	Before func(cfg *project.Config) string
	// Apply stores the answer in the record.
	Apply func(cfg *project.Config, answer Answer)
	// After optionally returns a notice shown once the answer is applied.
	After func(cfg *project.Config) string
	// Next selects the following step; StepDone ends the wizard.
	Next func(cfg *project.Config) StepID
}

// Wizard runs a table of steps.
type Wizard struct {
	steps map[StepID]Step
	start StepID
}

// New creates a wizard offering the given version catalogs.
func New(versions project.Versions) *Wizard {
	return NewWithSteps(Steps(versions), StepAddonName)
}

// NewWithSteps creates a wizard from an arbitrary step table.
func NewWithSteps(steps []Step, start StepID) *Wizard {
	m := make(map[StepID]Step, len(steps))
	for _, s := range steps {
		m[s.ID] = s
	}
	return &Wizard{steps: m, start: start}
}

// Run asks every reachable step in order and returns the finished record.
// Invalid answers are re-asked until valid; cancellation returns
// ErrInterrupted and no record.
func (w *Wizard) Run(ctx context.Context, p Prompter) (project.Config, error) {
	debug.DebugSection("Wizard")

	cfg := &project.Config{}
	visited := make(map[StepID]bool, len(w.steps))
	for id := w.start; id != StepDone; {
		if err := ctx.Err(); err != nil {
			return project.Config{}, fmt.Errorf("%w: %v", ErrInterrupted, err)
		}

		step, ok := w.steps[id]
		if !ok {
			return project.Config{}, fmt.Errorf("wizard: unknown step %s", id)
		}
		if visited[id] {
			return project.Config{}, fmt.Errorf("wizard: step %s reached twice", id)
		}
		visited[id] = true

		if step.Before != nil {
			if msg := step.Before(cfg); msg != "" {
				p.Notice(msg)
			}
		}

		answer, err := ask(p, step, cfg)
		if err != nil {
			return project.Config{}, fmt.Errorf("step %s: %w", id, err)
		}
		step.Apply(cfg, answer)
		debug.Debug("[wizard] %s answered", id)

		if step.After != nil {
			if msg := step.After(cfg); msg != "" {
				p.Notice(msg)
			}
		}

		id = step.Next(cfg)
	}

	return cfg.Normalize(), nil
}

// ask prompts for one step, repeating until the answer is acceptable.
func ask(p Prompter, step Step, cfg *project.Config) (Answer, error) {
	message := step.Message(cfg)

	switch step.Kind {
	case KindConfirm:
		yes, err := p.Confirm(message)
		if err != nil {
			return Answer{}, err
		}
		return Answer{Yes: yes}, nil

	case KindSelect:
		options := step.Options(cfg)
		if len(options) == 0 {
			return Answer{}, fmt.Errorf("no options available")
		}
		for {
			choice, err := p.Select(message, options)
			if err != nil {
				return Answer{}, err
			}
			if slices.Contains(options, choice) {
				return Answer{Text: choice}, nil
			}
			p.Reject(fmt.Sprintf("%q is not one of the available options.", choice))
		}

	case KindInput:
		for {
			text, err := p.Input(message)
			if err != nil {
				return Answer{}, err
			}
			text = strings.TrimSpace(text)
			if step.Validate == nil {
				return Answer{Text: text}, nil
			}
			if verr := step.Validate(text); verr != nil {
				p.Reject(verr.Error())
				continue
			}
			return Answer{Text: text}, nil
		}
	}

	return Answer{}, fmt.Errorf("unsupported step kind %d", step.Kind)
}
