package cli

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/tacogips/skadd/internal/wizard"
)

// selectPageSize is the number of options shown at once in select prompts.
const selectPageSize = 12

// SurveyPrompter implements wizard.Prompter on an interactive terminal.
type SurveyPrompter struct {
	printer *Printer
	opts    []survey.AskOpt
}

// NewSurveyPrompter creates a prompter that reports notices and
// rejections through printer.
func NewSurveyPrompter(printer *Printer, opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{printer: printer, opts: opts}
}

// Select asks for one of options; the first is preselected.
func (s *SurveyPrompter) Select(message string, options []string) (string, error) {
	var result string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: selectPageSize,
	}
	if err := survey.AskOne(prompt, &result, s.opts...); err != nil {
		return "", mapPromptError(err)
	}
	return result, nil
}

// Input asks for free text.
func (s *SurveyPrompter) Input(message string) (string, error) {
	var result string
	if err := survey.AskOne(&survey.Input{Message: message}, &result, s.opts...); err != nil {
		return "", mapPromptError(err)
	}
	return result, nil
}

// Confirm asks a yes/no question defaulting to yes.
func (s *SurveyPrompter) Confirm(message string) (bool, error) {
	var result bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: true}, &result, s.opts...); err != nil {
		return false, mapPromptError(err)
	}
	return result, nil
}

// Notice prints an informational line.
func (s *SurveyPrompter) Notice(message string) {
	s.printer.Info(message)
}

// Reject prints why an answer was refused.
func (s *SurveyPrompter) Reject(message string) {
	s.printer.Error(message)
}

// mapPromptError turns terminal interruption into wizard.ErrInterrupted.
func mapPromptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return wizard.ErrInterrupted
	}
	return err
}
