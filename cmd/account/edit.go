package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editFlags struct {
	Name     string
	Type     string
	Currency string
	Color    string
	Icon     string
}

type editRunner struct {
	svc     *service.Service
	flags   *editFlags
	account model.Account
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id|name>",
		Short: "Edit an account",
		Long: `Change the name, type, currency, color or icon of an account.

Without flags an interactive editor walks through each field. The balance
can't be edited directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := svc.Account.Find(args[0])
			if err != nil {
				return err
			}

			runner := &editRunner{
				svc:     svc,
				flags:   flags,
				account: acc,
			}

			if cmd.Flags().NFlag() > 0 {
				return runner.FlagsMode(cmd)
			}
			return runner.InteractiveMode(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "New account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "New account type")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "New currency code")
	cmd.Flags().StringVar(&flags.Color, "color", "", "New hex color")
	cmd.Flags().StringVar(&flags.Icon, "icon", "", "New icon name")

	return cmd
}

func (r *editRunner) FlagsMode(cmd *cobra.Command) error {
	var patch model.AccountPatch

	if cmd.Flags().Changed("name") {
		patch.Name = &r.flags.Name
	}
	if cmd.Flags().Changed("type") {
		t := model.AccountType(strings.ToLower(r.flags.Type))
		patch.Type = &t
	}
	if cmd.Flags().Changed("currency") {
		patch.Currency = &r.flags.Currency
	}
	if cmd.Flags().Changed("color") {
		patch.Color = &r.flags.Color
	}
	if cmd.Flags().Changed("icon") {
		patch.Icon = &r.flags.Icon
	}

	return r.save(cmd.Context(), patch)
}

func (r *editRunner) InteractiveMode(ctx context.Context) error {
	if err := views.RenderAccountDetail(views.AccountDetail(r.svc, r.account)); err != nil {
		return err
	}

	name, err := prompts.PromptAccountName(r.account.Name, validation.ValidateName)
	if err != nil {
		return err
	}

	accType, err := prompts.PromptAccountType(r.account.Type)
	if err != nil {
		return err
	}

	currency, err := prompts.PromptCurrency(r.account.Currency, r.svc.Config.Currencies.Codes())
	if err != nil {
		return err
	}

	color, err := prompts.PromptColor(r.account.Color, validation.ValidateColor)
	if err != nil {
		return err
	}

	patch := model.AccountPatch{}
	if name != r.account.Name {
		patch.Name = &name
	}
	if accType != r.account.Type {
		patch.Type = &accType
	}
	if currency != r.account.Currency {
		patch.Currency = &currency
	}
	if color != r.account.Color {
		patch.Color = &color
	}

	if patch == (model.AccountPatch{}) {
		pterm.Info.Println("Nothing changed")
		return nil
	}

	return r.save(ctx, patch)
}

func (r *editRunner) save(ctx context.Context, patch model.AccountPatch) error {
	acc, err := r.svc.Account.Update(ctx, r.account.ID, patch)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return views.RenderAccountSuccess(acc.ID, acc.Name, "updated")
}
