package account

import (
	"github.com/hance08/tally/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "Manage your accounts",
		Long: `Create, list, inspect, edit and delete accounts.

An account holds a balance in the base currency. Balances only move through
transactions; edit the transactions to correct a balance.`,
	}

	cmd.AddCommand(NewCreateCmd(svc))
	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewEditCmd(svc))
	cmd.AddCommand(NewDeleteCmd(svc))

	return cmd
}
