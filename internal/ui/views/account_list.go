package views

import (
	"github.com/pterm/pterm"
)

type AccountListItem struct {
	ID       string
	Name     string
	Type     string
	Currency string
	Balance  string
	Negative bool
	TxCount  int
}

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(items []AccountListItem, total string) error {
	if len(items) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Type", "Currency", "Balance", "Transactions"}}

	for _, item := range items {
		balance := pterm.Green(item.Balance)
		if item.Negative {
			balance = pterm.Red(item.Balance)
		}
		tableData = append(tableData, []string{
			pterm.Gray(item.ID),
			item.Name,
			item.Type,
			item.Currency,
			balance,
			pterm.Sprint(item.TxCount),
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts, balance %s\n", len(items), total)

	return nil
}
