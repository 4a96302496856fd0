package cmd

import (
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewSettingsCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderSettings(svc.Settings.Get())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderSettings(svc.Settings.Get())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "currency [code]",
		Short: "Set the display currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var code string
			if len(args) == 1 {
				code = args[0]
			} else {
				selected, err := prompts.PromptCurrency(svc.Settings.Get().Currency, svc.Config.Currencies.Codes())
				if err != nil {
					return err
				}
				code = selected
			}

			s, err := svc.Settings.SetCurrency(cmd.Context(), code)
			if err != nil {
				return err
			}
			pterm.Success.Printf("Amounts are now shown in %s\n", s.Currency)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "language [code]",
		Short: "Set the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var code string
			if len(args) == 1 {
				code = args[0]
			} else {
				choices := make([]prompts.Choice, 0, len(svc.Config.Languages))
				for _, l := range svc.Config.Languages {
					choices = append(choices, prompts.Choice{Label: l.Name, Value: l.Code})
				}
				selected, err := prompts.PromptSelect("Language:", choices, svc.Settings.Get().Language)
				if err != nil {
					return err
				}
				code = selected
			}

			s, err := svc.Settings.SetLanguage(cmd.Context(), code)
			if err != nil {
				return err
			}
			pterm.Success.Printf("Language set to %s\n", s.Language)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "dark-mode",
		Short: "Toggle dark mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := svc.Settings.ToggleDarkMode(cmd.Context())
			ui.ApplyTheme(s.DarkMode)
			return renderSettings(s)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "notifications",
		Short: "Toggle notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderSettings(svc.Settings.ToggleNotifications(cmd.Context()))
		},
	})

	return cmd
}

func renderSettings(s model.Settings) error {
	return views.RenderSettings(views.SettingsItem{
		Currency:      s.Currency,
		Language:      s.Language,
		DarkMode:      s.DarkMode,
		Notifications: s.Notifications,
	})
}
