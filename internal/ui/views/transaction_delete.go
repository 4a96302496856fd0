package views

import (
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
)

type TransactionDeletePreviewItem struct {
	ID          string
	Date        string
	Description string
	Amount      string
	Account     string
}

func RenderTransactionDeletePreview(data TransactionDeletePreviewItem) error {
	pterm.Warning.Printf("About to delete transaction %s:\n", data.ID)

	deletionInfo := pterm.TableData{
		{"Date", data.Date},
		{"Description", orDash(data.Description)},
		{"Amount", data.Amount},
		{"Account", data.Account},
	}

	if err := pterm.DefaultTable.WithData(deletionInfo).Render(); err != nil {
		return err
	}
	pterm.Warning.Println("The account balance will be restored. This action cannot be undone!")
	return nil
}

func RenderTransactionDeleteSuccess(id string) {
	pterm.Success.Printf("Transaction %s deleted successfully\n", id)
	ui.Separator()
}
