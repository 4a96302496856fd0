package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name     string
	Type     string
	Balance  string
	Currency string
	Color    string
	Icon     string
}

type createRunner struct {
	svc   *service.Service
	flags *createFlags
	spec  model.AccountSpec
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long: `Create an account such as a wallet, a bank account or a credit card.

Without flags an interactive wizard asks for each field.

Example: tally account create -n "Bank Account" -t bank -b 2500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				svc:   svc,
				flags: flags,
			}

			hasFlags := cmd.Flags().Changed("name") || cmd.Flags().Changed("type")
			if hasFlags {
				return runner.FlagsMode(cmd.Context())
			}
			return runner.InteractiveMode(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", string(model.AccountCash), "Account type: cash, bank, credit, savings, investment, other")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Initial balance in the base currency (may be negative)")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to the display currency)")
	cmd.Flags().StringVar(&flags.Color, "color", "", "Hex color, e.g. #4CD964")
	cmd.Flags().StringVar(&flags.Icon, "icon", "", "Icon name, e.g. wallet")

	return cmd
}

// FlagsMode builds the account from command-line flags
func (r *createRunner) FlagsMode(ctx context.Context) error {
	if err := validation.ValidateName(r.flags.Name); err != nil {
		return fmt.Errorf("invalid account name: %v: %w", err, apperrors.ErrValidation)
	}

	balance, err := parseBalance(r.flags.Balance)
	if err != nil {
		return err
	}

	r.spec = model.AccountSpec{
		Name:           r.flags.Name,
		Type:           model.AccountType(strings.ToLower(r.flags.Type)),
		InitialBalance: balance,
		Currency:       r.flags.Currency,
		Color:          r.flags.Color,
		Icon:           r.flags.Icon,
	}

	return r.save(ctx)
}

// InteractiveMode builds the account through prompts
func (r *createRunner) InteractiveMode(ctx context.Context) error {
	accType, err := prompts.PromptAccountType("")
	if err != nil {
		return err
	}

	name, err := prompts.PromptAccountName("", validation.ValidateName)
	if err != nil {
		return err
	}

	currency, err := prompts.PromptCurrency(r.svc.Settings.Get().Currency, r.svc.Config.Currencies.Codes())
	if err != nil {
		return err
	}

	balanceInput, err := prompts.PromptInitialBalance(validation.ValidateBalance)
	if err != nil {
		return err
	}
	balance, err := parseBalance(balanceInput)
	if err != nil {
		return err
	}

	color, err := prompts.PromptColor("", validation.ValidateColor)
	if err != nil {
		return err
	}

	r.spec = model.AccountSpec{
		Name:           name,
		Type:           accType,
		InitialBalance: balance,
		Currency:       currency,
		Color:          color,
	}

	if err := r.displaySummary(); err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Info.Println("Account creation cancelled")
		return nil
	}

	return r.save(ctx)
}

func (r *createRunner) displaySummary() error {
	ui.Separator()

	currency := r.spec.Currency
	if currency == "" {
		currency = r.svc.Settings.Get().Currency
	}

	tableData := pterm.TableData{
		{pterm.Blue("Name"), r.spec.Name},
		{pterm.Blue("Type"), string(r.spec.Type)},
		{pterm.Blue("Currency"), currency},
		{pterm.Blue("Balance"), utils.FormatMoney(r.spec.InitialBalance, r.svc.Config.Currencies.Symbol(r.svc.Config.Currencies.Base))},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func (r *createRunner) save(ctx context.Context) error {
	acc, err := r.svc.Account.Create(ctx, r.spec)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return views.RenderAccountSuccess(acc.ID, acc.Name, "created")
}

func parseBalance(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, nil
	}
	balance, err := utils.ParseAmount(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid balance %q: must be a number: %w", input, apperrors.ErrValidation)
	}
	return balance, nil
}
