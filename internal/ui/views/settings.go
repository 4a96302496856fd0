package views

import "github.com/pterm/pterm"

type SettingsItem struct {
	Currency      string
	Language      string
	DarkMode      bool
	Notifications bool
}

func onOff(b bool) string {
	if b {
		return pterm.Green("on")
	}
	return pterm.Gray("off")
}

func RenderSettings(data SettingsItem) error {
	pterm.DefaultSection.Println("Settings")

	tableData := pterm.TableData{
		{"Display Currency", data.Currency},
		{"Language", data.Language},
		{"Dark Mode", onOff(data.DarkMode)},
		{"Notifications", onOff(data.Notifications)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
