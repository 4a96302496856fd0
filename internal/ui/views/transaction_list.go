package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

type TransactionListItem struct {
	ID          string
	Date        string
	Type        model.TransactionType
	Account     string
	Category    string
	Description string
	Amount      string
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(items []TransactionListItem, title string) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println(title)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Account", "Category", "Description", "Amount"},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			pterm.Gray(item.ID),
			item.Date,
			colorByType(item.Type, TypeLabel(item.Type)),
			item.Account,
			item.Category,
			orDash(item.Description),
			colorByType(item.Type, item.Amount),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
