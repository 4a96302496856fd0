package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Amount      string
	Type        string
	Account     string
	Category    string
	Date        string
	Description string
	Currency    string
	Recurring   bool
	Frequency   string
	Note        string
	Attachments []string
	Yes         bool
}

type addRunner struct {
	svc      *service.Service
	flags    *addFlags
	spec     model.TransactionSpec
	currency string
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or an expense",
		Long: `Record an income or an expense against one account.

Without --amount an interactive wizard asks for each field. Amounts entered
in another currency (--currency) are converted to the base currency.

Example: tally add -a 12.50 -t expense --account Cash --category "Food & Dining" -d "Lunch"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
			}

			if flags.Amount == "" {
				return runner.InteractiveMode(cmd.Context())
			}
			return runner.FlagsMode(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount, always positive")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", string(model.TxExpense), "Transaction type: income or expense")
	cmd.Flags().StringVar(&flags.Account, "account", "", "Account id or name")
	cmd.Flags().StringVar(&flags.Category, "category", "", "Category id or name")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Date (YYYY-MM-DD), defaults to now")
	cmd.Flags().StringVarP(&flags.Description, "desc", "d", "", "Description")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency the amount is entered in (defaults to the base currency)")
	cmd.Flags().BoolVar(&flags.Recurring, "recurring", false, "Mark the transaction as recurring")
	cmd.Flags().StringVar(&flags.Frequency, "frequency", string(model.FrequencyMonthly), "Recurrence: daily, weekly, monthly, yearly")
	cmd.Flags().StringVar(&flags.Note, "note", "", "Free-form notes")
	cmd.Flags().StringSliceVar(&flags.Attachments, "attach", nil, "Attachment reference (repeatable)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// FlagsMode builds the transaction from command-line flags
func (r *addRunner) FlagsMode(ctx context.Context) error {
	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", r.flags.Amount, err)
	}

	txType, err := ledger.ParseTransactionType(r.flags.Type)
	if err != nil {
		return err
	}

	if r.flags.Account == "" {
		return fmt.Errorf("--account is required when --amount is given: %w", apperrors.ErrValidation)
	}
	acc, err := r.svc.Account.Find(r.flags.Account)
	if err != nil {
		return err
	}

	if r.flags.Category == "" {
		return fmt.Errorf("--category is required when --amount is given: %w", apperrors.ErrValidation)
	}
	category, err := r.svc.Category.Find(r.flags.Category, txType)
	if err != nil {
		return err
	}

	var date time.Time
	if r.flags.Date != "" {
		date, err = constants.ParseDate(r.flags.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q, use %s: %w", r.flags.Date, constants.DateFormat, apperrors.ErrValidation)
		}
	}

	r.currency = r.flags.Currency
	r.spec = model.TransactionSpec{
		Amount:             amount,
		Description:        r.flags.Description,
		Date:               date,
		CategoryID:         category.ID,
		AccountID:          acc.ID,
		Type:               txType,
		IsRecurring:        r.flags.Recurring,
		RecurringFrequency: model.Frequency(strings.ToLower(r.flags.Frequency)),
		Attachments:        r.flags.Attachments,
		Notes:              r.flags.Note,
	}

	if !r.flags.Yes {
		return r.confirmAndSave(ctx)
	}
	return r.save(ctx)
}

// InteractiveMode builds the transaction through the add wizard
func (r *addRunner) InteractiveMode(ctx context.Context) error {
	ui.PrintL1Title("Add Transaction")

	txType, err := prompts.PromptTransactionType("")
	if err != nil {
		return err
	}

	accountID, err := prompts.PromptAccountSelection(r.svc.Account.List(), "Account:", "", func(acc model.Account) string {
		return r.svc.Report.Format(acc.Balance)
	})
	if err != nil {
		return err
	}

	categoryID, err := prompts.PromptCategorySelection(r.svc.Category.List(txType), "")
	if err != nil {
		return err
	}

	currency, err := prompts.PromptCurrency(r.svc.Config.Currencies.Base, r.svc.Config.Currencies.Codes())
	if err != nil {
		return err
	}

	amountInput, err := prompts.PromptAmount(fmt.Sprintf("Amount (%s):", currency), "Always positive; the type decides the direction", validation.ValidateAmount)
	if err != nil {
		return err
	}
	amount, err := utils.ParseAmount(amountInput)
	if err != nil {
		return err
	}

	dateInput, err := prompts.PromptTransactionDate(time.Time{}, validation.ValidateDate)
	if err != nil {
		return err
	}
	date, err := constants.ParseDate(dateInput)
	if err != nil {
		return err
	}

	desc, err := prompts.PromptDescription("Description (optional):", false)
	if err != nil {
		return err
	}

	recurring, err := prompts.PromptConfirm("Is this a recurring transaction?", false)
	if err != nil {
		return err
	}
	var frequency model.Frequency
	if recurring {
		frequency, err = prompts.PromptFrequency("")
		if err != nil {
			return err
		}
	}

	r.currency = currency
	r.spec = model.TransactionSpec{
		Amount:             amount,
		Description:        desc,
		Date:               date,
		CategoryID:         categoryID,
		AccountID:          accountID,
		Type:               txType,
		IsRecurring:        recurring,
		RecurringFrequency: frequency,
	}

	return r.confirmAndSave(ctx)
}

func (r *addRunner) confirmAndSave(ctx context.Context) error {
	if err := views.RenderTransactionSummary(r.summary()); err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Save this transaction?", true)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Info.Println("Transaction cancelled")
		return nil
	}

	return r.save(ctx)
}

func (r *addRunner) summary() views.TransactionSummaryItem {
	cfg := r.svc.Config.Currencies

	date := r.spec.Date
	if date.IsZero() {
		date = time.Now()
	}

	currency := strings.ToUpper(strings.TrimSpace(r.currency))
	if currency == "" {
		currency = cfg.Base
	}

	item := views.TransactionSummaryItem{
		Date:        date.Format(constants.DateFormat),
		Type:        r.spec.Type,
		Amount:      utils.FormatMoney(r.spec.Amount, cfg.Symbol(currency)) + " " + currency,
		Description: r.spec.Description,
	}

	if !strings.EqualFold(currency, cfg.Base) {
		if base, err := ledger.FromDisplay(r.spec.Amount, currency, cfg.RateTable()); err == nil {
			item.Converted = utils.FormatMoney(base.Round(2), cfg.Symbol(cfg.Base)) + " " + cfg.Base
		}
	}

	if acc, err := r.svc.Account.Get(r.spec.AccountID); err == nil {
		item.Account = acc.Name
	}
	item.Category, _ = r.svc.Category.Label(r.spec.CategoryID)

	if r.spec.IsRecurring {
		item.Recurring = string(r.spec.RecurringFrequency)
	}

	return item
}

func (r *addRunner) save(ctx context.Context) error {
	tx, err := r.svc.Transaction.Add(ctx, r.spec, r.currency)
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	pterm.Success.Printf("Transaction %s recorded: %s\n", tx.ID, r.svc.Report.Format(tx.Effect()))
	return nil
}
