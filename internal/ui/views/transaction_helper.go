package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

// colorByType paints s green for income and red for expense.
func colorByType(t model.TransactionType, s string) string {
	switch t {
	case model.TxIncome:
		return pterm.Green(s)
	case model.TxExpense:
		return pterm.Red(s)
	case model.TxTransfer:
		return pterm.Blue(s)
	default:
		return s
	}
}

// TypeLabel is the display name of a transaction type.
func TypeLabel(t model.TransactionType) string {
	switch t {
	case model.TxIncome:
		return "Income"
	case model.TxExpense:
		return "Expense"
	case model.TxTransfer:
		return "Transfer"
	default:
		return string(t)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
