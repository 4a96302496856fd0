package account

import (
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts and the total balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := views.AccountItems(svc)
			total := svc.Report.Format(svc.Account.TotalBalance())
			return views.NewAccountListView().Render(items, total)
		},
	}
}
