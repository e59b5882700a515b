// Package ui holds the interactive prompts used by the --interactive flag.
package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/sgaunet/millisecond/internal/units"
	"github.com/sgaunet/millisecond/pkg/duration"
)

// ErrPromptCancelled is returned when the user aborts a prompt.
var ErrPromptCancelled = errors.New("prompt cancelled by user")

var unitLabels = map[units.Unit]string{
	units.Nanoseconds:  "nanoseconds (ns)",
	units.Microseconds: "microseconds (µs)",
	units.Milliseconds: "milliseconds (ms)",
	units.Seconds:      "seconds (s)",
	units.Minutes:      "minutes (m)",
	units.Hours:        "hours (h)",
	units.Days:         "days (d)",
	units.Years:        "years (y)",
}

var styleLabels = []string{
	duration.StyleShort: "short  (1y 17d 5h)",
	duration.StyleLong:  "long   (1 year 17 days 5 hours)",
}

// Prompter asks for the pieces of input missing from the command line.
type Prompter struct{}

// NewPrompter creates a new prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// SelectUnit lets the user pick the input unit, starting on def.
func (p *Prompter) SelectUnit(def units.Unit) (units.Unit, error) {
	options := unitOptions()

	var selected int
	prompt := &survey.Select{
		Message: "Input unit:",
		Options: options,
		Default: unitLabels[def],
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return def, fmt.Errorf("%w: %w", ErrPromptCancelled, err)
	}

	return units.All()[selected], nil
}

// SelectStyle lets the user pick the rendering style, starting on def.
func (p *Prompter) SelectStyle(def duration.Style) (duration.Style, error) {
	var selected int
	prompt := &survey.Select{
		Message: "Output style:",
		Options: styleLabels,
		Default: styleLabels[def],
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return def, fmt.Errorf("%w: %w", ErrPromptCancelled, err)
	}

	return duration.Style(selected), nil
}

// AskValue reads the value to convert, rejecting anything units.Decompose would.
func (p *Prompter) AskValue(unit units.Unit) (string, error) {
	var value string
	prompt := &survey.Input{
		Message: fmt.Sprintf("Value in %s:", unit),
	}
	err := survey.AskOne(prompt, &value, survey.WithValidator(survey.Required), survey.WithValidator(valueValidator(unit)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPromptCancelled, err)
	}

	return value, nil
}

func unitOptions() []string {
	all := units.All()
	options := make([]string, len(all))
	for i, u := range all {
		options[i] = unitLabels[u]
	}
	return options
}

func valueValidator(unit units.Unit) survey.Validator {
	return func(ans any) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("%w: %v", units.ErrInvalidValue, ans)
		}
		_, err := units.Decompose(unit, s)
		return err
	}
}
