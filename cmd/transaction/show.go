package transaction

import (
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := svc.Transaction.Get(args[0])
			if err != nil {
				return err
			}
			return views.RenderTransactionDetail(views.TransactionDetail(svc, tx))
		},
	}
}
