package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Choice is a select option whose label differs from the value it returns.
type Choice struct {
	Label string
	Value string
}

// PromptDescription prompts for a description text
// Can be used for transactions, accounts, or any other entity
func PromptDescription(message string, required bool) (string, error) {
	var desc string

	input := huh.NewInput().
		Title(message).
		Value(&desc)

	if required {
		input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("description is required")
			}
			return nil
		})
	}

	err := input.Run()
	return strings.TrimSpace(desc), err
}

// PromptAmount prompts for an amount with custom validation
func PromptAmount(message string, helpText string, validator func(string) error) (string, error) {
	var amount string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return strings.TrimSpace(amount), err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptDate prompts for a date in YYYY-MM-DD format; Enter keeps defaultDate.
func PromptDate(message string, defaultDate string, helpText string, validator func(string) error) (string, error) {
	var date string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Placeholder(defaultDate).
		Value(&date)

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(func(s string) error {
			if s == "" && defaultValue != "" {
				return nil
			}
			return validator(s)
		})
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptSelect prompts for one of the choices and returns its value.
func PromptSelect(message string, choices []Choice, defaultValue string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("nothing to choose from")
	}

	selected := choices[0].Value
	for _, c := range choices {
		if c.Value == defaultValue {
			selected = c.Value
			break
		}
	}

	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, c.Value))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(min(len(opts)+2, 15)).
		Run()

	return selected, err
}

// PromptStrings is PromptSelect for plain string options.
func PromptStrings(message string, options []string, defaultOption string) (string, error) {
	choices := make([]Choice, 0, len(options))
	for _, o := range options {
		choices = append(choices, Choice{Label: o, Value: o})
	}
	return PromptSelect(message, choices, defaultOption)
}
