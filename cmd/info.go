package cmd

import (
	"os"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, storage location, and record counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	svc := r.app.Service

	configPath := svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath := r.app.DBPath
	dbExists := false
	if dbPath == "" {
		dbPath = "-"
		dbExists = true
	} else if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		Driver:       svc.Config.Database.Driver,
		DBPath:       dbPath,
		DBExists:     dbExists,
		BaseCurrency: svc.Config.Currencies.Base,
		Currency:     svc.Settings.Get().Currency,
		AppDataDir:   appDataDirOrUnknown(),
		Accounts:     len(svc.Account.List()),
		Transactions: len(svc.Transaction.List(ledger.PeriodAll, ledger.Filter{})),
		Categories:   len(svc.Category.List("")),
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
