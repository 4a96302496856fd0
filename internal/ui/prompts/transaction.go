package prompts

import (
	"fmt"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

// PromptTransactionType prompts for transaction type selection
func PromptTransactionType(current model.TransactionType) (model.TransactionType, error) {
	choices := []Choice{
		{Label: "Record Expense", Value: string(model.TxExpense)},
		{Label: "Record Income", Value: string(model.TxIncome)},
	}

	if current == "" {
		current = model.TxExpense
	}

	selected, err := PromptSelect("Choose the transaction type:", choices, string(current))
	if err != nil {
		return "", err
	}
	return model.TransactionType(selected), nil
}

// PromptTransactionDate prompts for transaction date
func PromptTransactionDate(current time.Time, validator func(string) error) (string, error) {
	if current.IsZero() {
		current = time.Now()
	}
	return PromptDate(
		"Transaction Date (YYYY-MM-DD):",
		current.Format(constants.DateFormat),
		"Press Enter to keep the shown date",
		validator,
	)
}

// PromptAccountSelection prompts for an account, showing each balance.
func PromptAccountSelection(accounts []model.Account, message, currentID string, formatBalance func(model.Account) string) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts available, create one with `tally account create`")
	}

	choices := make([]Choice, 0, len(accounts))
	for _, acc := range accounts {
		label := acc.Name
		if formatBalance != nil {
			label = fmt.Sprintf("%s (Balance: %s)", acc.Name, formatBalance(acc))
		}
		choices = append(choices, Choice{Label: label, Value: acc.ID})
	}

	return PromptSelect(message, choices, currentID)
}

// PromptCategorySelection offers the categories matching the transaction type.
func PromptCategorySelection(categories []model.Category, currentID string) (string, error) {
	if len(categories) == 0 {
		return "", fmt.Errorf("no categories available, add one with `tally category add`")
	}

	choices := make([]Choice, 0, len(categories))
	for _, c := range categories {
		choices = append(choices, Choice{Label: c.Name, Value: c.ID})
	}

	return PromptSelect("Category:", choices, currentID)
}

// PromptFrequency asks how often a recurring transaction repeats.
func PromptFrequency(current model.Frequency) (model.Frequency, error) {
	options := []string{
		string(model.FrequencyDaily),
		string(model.FrequencyWeekly),
		string(model.FrequencyMonthly),
		string(model.FrequencyYearly),
	}
	if current == "" {
		current = model.FrequencyMonthly
	}

	selected, err := PromptStrings("Repeats:", options, string(current))
	return model.Frequency(selected), err
}
