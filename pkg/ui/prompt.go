package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Prompter asks the user for input.
type Prompter interface {
	// Text asks for a line of text, offering def as the default.
	Text(label, def string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string, def bool) (bool, error)
}

// PtermPrompter prompts interactively on the terminal with pterm.
type PtermPrompter struct{}

// NewPtermPrompter creates a terminal prompter
func NewPtermPrompter() *PtermPrompter {
	return &PtermPrompter{}
}

// Text implements Prompter
func (p *PtermPrompter) Text(label, def string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(def).
		Show(label)
	if err != nil {
		return "", fmt.Errorf("prompt %q failed: %w", label, err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm implements Prompter
func (p *PtermPrompter) Confirm(label string, def bool) (bool, error) {
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(def).
		Show(label)
	if err != nil {
		return false, fmt.Errorf("confirmation %q failed: %w", label, err)
	}
	return ok, nil
}

// StaticPrompter answers every prompt with fixed values. It is used when
// input is not a terminal and by tests.
type StaticPrompter struct {
	Answers   map[string]string
	Confirmed bool
}

// Text implements Prompter: the answer registered for label, or def.
func (p *StaticPrompter) Text(label, def string) (string, error) {
	if answer, ok := p.Answers[label]; ok {
		return answer, nil
	}
	return def, nil
}

// Confirm implements Prompter
func (p *StaticPrompter) Confirm(label string, def bool) (bool, error) {
	return p.Confirmed, nil
}
