package transaction

import (
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction and restore its account balance. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := svc.Transaction.Get(args[0])
			if err != nil {
				return err
			}

			if !flags.Yes {
				preview := views.TransactionDeletePreviewItem{
					ID:          tx.ID,
					Date:        tx.Date.Format(constants.DateFormat),
					Description: tx.Description,
					Amount:      svc.Report.Format(tx.Effect()),
				}
				if acc, err := svc.Account.Get(tx.AccountID); err == nil {
					preview.Account = acc.Name
				}
				if err := views.RenderTransactionDeletePreview(preview); err != nil {
					return err
				}

				confirmation, err := ui.ConfirmDestructive("Do you want to delete this transaction?")
				if err != nil {
					return err
				}
				if !confirmation {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			if err := svc.Transaction.Delete(cmd.Context(), tx.ID); err != nil {
				return err
			}

			views.RenderTransactionDeleteSuccess(tx.ID)
			return printRecent(svc)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
