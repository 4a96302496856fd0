package prompts

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/model"
)

var accountTypeLabels = map[model.AccountType]string{
	model.AccountCash:       "Cash",
	model.AccountBank:       "Bank Account",
	model.AccountCredit:     "Credit Card",
	model.AccountSavings:    "Savings",
	model.AccountInvestment: "Investment",
	model.AccountOther:      "Other",
}

// PromptAccountType prompts for account type selection
func PromptAccountType(current model.AccountType) (model.AccountType, error) {
	choices := make([]Choice, 0, len(model.AccountTypes))
	for _, t := range model.AccountTypes {
		choices = append(choices, Choice{Label: accountTypeLabels[t], Value: string(t)})
	}

	if current == "" {
		current = model.AccountCash
	}

	selected, err := PromptSelect("Account Type:", choices, string(current))
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return model.AccountType(selected), nil
}

// PromptAccountName prompts for account name with validation
func PromptAccountName(current string, validator func(string) error) (string, error) {
	name, err := PromptInput("Account Name:", current, validator)
	return strings.TrimSpace(name), err
}

// PromptCurrency offers the configured currency codes.
func PromptCurrency(defaultCurrency string, codes []string) (string, error) {
	message := fmt.Sprintf("Currency (default: %s):", defaultCurrency)

	selected, err := PromptStrings(message, codes, defaultCurrency)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptInitialBalance prompts for initial balance with validation
func PromptInitialBalance(validator func(string) error) (string, error) {
	return PromptInput("Initial Balance (press Enter for 0):", "0", validator)
}

// PromptColor asks for an optional hex color.
func PromptColor(current string, validator func(string) error) (string, error) {
	color, err := PromptInput("Color (hex, optional):", current, validator)
	return strings.TrimSpace(color), err
}
