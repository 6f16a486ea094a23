package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/tacogips/skadd/internal/wizard"
)

func TestMapPromptError(t *testing.T) {
	other := errors.New("EOF")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"interrupt", terminal.InterruptErr, wizard.ErrInterrupted},
		{"wrapped interrupt", fmt.Errorf("ask: %w", terminal.InterruptErr), wizard.ErrInterrupted},
		{"other error", other, other},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapPromptError(tt.err); got != tt.want {
				t.Errorf("mapPromptError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSurveyPrompter_Messages(t *testing.T) {
	var out bytes.Buffer
	p := NewSurveyPrompter(NewPrinter(&out, false, false))

	p.Notice("Repository name will be: my-addon")
	p.Reject("Username cannot be empty.")

	want := "[*] Repository name will be: my-addon\n[-] Username cannot be empty.\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
