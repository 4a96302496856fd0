package views

import (
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
)

type AccountDetailItem struct {
	ID             string
	Name           string
	Type           string
	Currency       string
	Balance        string
	OpeningBalance string
	Color          string
	Icon           string
	CreatedAt      string
	UpdatedAt      string
}

func RenderAccountDetail(data AccountDetailItem) error {
	pterm.Println()
	ui.PrintL2Title("Account Info")

	tableData := pterm.TableData{
		{pterm.Blue("ID"), data.ID},
		{pterm.Blue("Name"), data.Name},
		{pterm.Blue("Type"), data.Type},
		{pterm.Blue("Currency"), data.Currency},
		{pterm.Blue("Balance"), data.Balance},
		{pterm.Blue("Opening Balance"), data.OpeningBalance},
		{pterm.Blue("Color"), orDash(data.Color)},
		{pterm.Blue("Icon"), orDash(data.Icon)},
		{pterm.Blue("Created"), data.CreatedAt},
		{pterm.Blue("Updated"), data.UpdatedAt},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountSuccess(id, name, action string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), id},
		{pterm.Blue("Name"), name},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Printf("Account %s successfully!\n", action)

	return nil
}
