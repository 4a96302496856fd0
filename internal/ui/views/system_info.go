package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath   string
	Driver       string
	DBPath       string
	DBExists     bool // true = Found, false = Not Found
	BaseCurrency string
	Currency     string
	AppDataDir   string
	Accounts     int
	Transactions int
	Categories   int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Driver", data.Driver},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Base Currency", data.BaseCurrency},
		{"Display Currency", data.Currency},
		{"AppData Directory", data.AppDataDir},
		{"Accounts", pterm.Sprint(data.Accounts)},
		{"Transactions", pterm.Sprint(data.Transactions)},
		{"Categories", pterm.Sprint(data.Categories)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
