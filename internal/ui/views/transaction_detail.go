package views

import (
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
)

type TransactionDetailItem struct {
	ID          string
	Date        string
	Type        model.TransactionType
	Amount      string
	Account     string
	Category    string
	Description string
	Recurring   string
	Notes       string
	Attachments []string
	CreatedBy   string
	CreatedAt   string
	UpdatedAt   string
}

func RenderTransactionDetail(detail TransactionDetailItem) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")

	attachments := "-"
	if len(detail.Attachments) > 0 {
		attachments = strings.Join(detail.Attachments, "\n")
	}

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", detail.ID},
		{"Date", detail.Date},
		{"Type", colorByType(detail.Type, TypeLabel(detail.Type))},
		{"Amount", colorByType(detail.Type, detail.Amount)},
		{"Account", detail.Account},
		{"Category", detail.Category},
		{"Description", orDash(detail.Description)},
		{"Recurring", orDash(detail.Recurring)},
		{"Notes", orDash(detail.Notes)},
		{"Attachments", attachments},
		{"Created By", orDash(detail.CreatedBy)},
		{"Created", detail.CreatedAt},
		{"Updated", detail.UpdatedAt},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
