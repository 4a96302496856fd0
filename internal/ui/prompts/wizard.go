package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInitCurrency asks for the display currency on first start. Only
// codes with a configured rate are offered.
func PromptInitCurrency(currDefault string, codes []string, symbol func(string) string) (string, error) {
	selection := currDefault

	opts := make([]huh.Option[string], 0, len(codes))
	for _, code := range codes {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", code, symbol(code)), code))
	}

	err := huh.NewSelect[string]().
		Title("Welcome to Tally! This is the first run, please pick your display currency:").
		Description("Balances are stored in the base currency and shown converted to this one.").
		Options(opts...).
		Value(&selection).
		Height(min(len(opts)+2, 12)).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("currency code is required")
			}
			return nil
		}).
		Run()

	if err != nil {
		return "", err
	}

	return selection, nil
}
