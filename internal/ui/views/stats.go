package views

import (
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
)

type StatsItem struct {
	Period       string
	Since        string
	Income       string
	Expense      string
	Net          string
	NetNegative  bool
	TotalBalance string
	Count        int
}

type CategoryShareItem struct {
	Name       string
	Total      string
	Percentage string
	// Share is the percentage rounded for the bar chart.
	Share int
}

func RenderStats(data StatsItem, breakdownTitle string, breakdown []CategoryShareItem) error {
	ui.PrintL1Title("Statistics: %s", data.Period)
	if data.Since != "" {
		pterm.FgGray.Printf("Since %s\n", data.Since)
	}

	net := pterm.Green(data.Net)
	if data.NetNegative {
		net = pterm.Red(data.Net)
	}

	summary := pterm.TableData{
		{pterm.Blue("Income"), pterm.Green(data.Income)},
		{pterm.Blue("Expenses"), pterm.Red(data.Expense)},
		{pterm.Blue("Net Savings"), net},
		{pterm.Blue("Transactions"), pterm.Sprint(data.Count)},
		{pterm.Blue("Total Balance"), data.TotalBalance},
	}
	if err := pterm.DefaultTable.WithData(summary).Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title(breakdownTitle)
	if len(breakdown) == 0 {
		pterm.Info.Println("No transactions in this period")
		return nil
	}

	tableData := pterm.TableData{{"Category", "Amount", "Share"}}
	bars := make([]pterm.Bar, 0, len(breakdown))
	for _, item := range breakdown {
		tableData = append(tableData, []string{item.Name, item.Total, item.Percentage})
		bars = append(bars, pterm.Bar{Label: item.Name, Value: item.Share})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	return pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Render()
}
