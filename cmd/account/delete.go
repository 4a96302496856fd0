package account

import (
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <id|name>",
		Short: "Delete an account",
		Long: `Delete an account. Accounts that still have transactions can't be
deleted; delete or move those transactions first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := svc.Account.Find(args[0])
			if err != nil {
				return err
			}

			if !flags.Yes {
				pterm.Warning.Printf("About to delete account %s (%s)\n", acc.Name, acc.ID)

				confirmation, err := ui.ConfirmDestructive("Do you want to delete this account?")
				if err != nil {
					return err
				}
				if !confirmation {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			if err := svc.Account.Delete(cmd.Context(), acc.ID); err != nil {
				return err
			}

			pterm.Success.Printf("Account %s deleted successfully\n", acc.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
