package account

import (
	"fmt"

	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type showFlags struct {
	Limit int
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show an account and its latest transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := svc.Account.Find(args[0])
			if err != nil {
				return err
			}

			if err := views.RenderAccountDetail(views.AccountDetail(svc, acc)); err != nil {
				return err
			}

			txns := svc.Transaction.ByAccount(acc.ID)
			if len(txns) == 0 {
				pterm.Info.Println("No transactions on this account yet")
				return nil
			}
			if flags.Limit > 0 && len(txns) > flags.Limit {
				txns = txns[:flags.Limit]
			}

			title := fmt.Sprintf("Transactions (%d of %d)", len(txns), svc.Account.TransactionCount(acc.ID))
			return views.NewTransactionListView().Render(views.TransactionItems(svc, txns), title)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 10, "Number of transactions to show (0 for all)")

	return cmd
}
