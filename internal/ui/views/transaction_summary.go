package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

// TransactionSummaryItem is what the add wizard shows before saving.
type TransactionSummaryItem struct {
	Date        string
	Type        model.TransactionType
	Amount      string
	Converted   string
	Account     string
	Category    string
	Description string
	Recurring   string
}

func RenderTransactionSummary(input TransactionSummaryItem) error {
	pterm.DefaultSection.Println("Transaction Summary")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Date", input.Date},
		{"Type", colorByType(input.Type, TypeLabel(input.Type))},
		{"Amount", input.Amount},
	}
	if input.Converted != "" {
		tableData = append(tableData, []string{"Stored As", input.Converted})
	}
	tableData = append(tableData,
		[]string{"Account", input.Account},
		[]string{"Category", input.Category},
		[]string{"Description", orDash(input.Description)},
		[]string{"Recurring", orDash(input.Recurring)},
	)

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
