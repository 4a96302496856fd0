package transaction

import (
	"github.com/hance08/tally/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    `Record, list, inspect, edit and delete income and expenses.`,
	}

	cmd.AddCommand(NewAddCmd(svc))
	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewEditCmd(svc))
	cmd.AddCommand(NewDeleteCmd(svc))

	return cmd
}
