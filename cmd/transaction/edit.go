package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editFlags struct {
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
}

type editRunner struct {
	svc   *service.Service
	flags *editFlags
	tx    model.Transaction
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit any field of a transaction. Account balances are rebalanced,
including when the transaction moves to another account.

Without flags an interactive editor walks through each field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := svc.Transaction.Get(args[0])
			if err != nil {
				return err
			}

			runner := &editRunner{
				svc:   svc,
				flags: flags,
				tx:    tx,
			}

			if cmd.Flags().NFlag() > 0 {
				return runner.FlagsMode(cmd)
			}
			return runner.InteractiveMode(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "New amount")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "New type: income or expense")
	cmd.Flags().StringVar(&flags.Account, "account", "", "Move to this account (id or name)")
	cmd.Flags().StringVar(&flags.Category, "category", "", "New category (id or name)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.Description, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency the new amount is entered in")
	cmd.Flags().BoolVar(&flags.Recurring, "recurring", false, "Mark or unmark as recurring")
	cmd.Flags().StringVar(&flags.Frequency, "frequency", "", "Recurrence: daily, weekly, monthly, yearly")
	cmd.Flags().StringVar(&flags.Note, "note", "", "New notes")
	cmd.Flags().StringSliceVar(&flags.Attachments, "attach", nil, "Replace the attachment references")

	return cmd
}

func (r *editRunner) FlagsMode(cmd *cobra.Command) error {
	var patch model.TransactionPatch
	changed := cmd.Flags().Changed

	if changed("amount") {
		amount, err := utils.ParseAmount(r.flags.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", r.flags.Amount, err)
		}
		patch.Amount = &amount
	}

	txType := r.tx.Type
	if changed("type") {
		parsed, err := ledger.ParseTransactionType(r.flags.Type)
		if err != nil {
			return err
		}
		txType = parsed
		patch.Type = &txType
	}

	if changed("account") {
		acc, err := r.svc.Account.Find(r.flags.Account)
		if err != nil {
			return err
		}
		patch.AccountID = &acc.ID
	}

	if changed("category") {
		c, err := r.svc.Category.Find(r.flags.Category, txType)
		if err != nil {
			return err
		}
		patch.CategoryID = &c.ID
	}

	if changed("date") {
		date, err := constants.ParseDate(r.flags.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q, use %s: %w", r.flags.Date, constants.DateFormat, apperrors.ErrValidation)
		}
		patch.Date = &date
	}

	if changed("desc") {
		patch.Description = &r.flags.Description
	}
	if changed("recurring") {
		patch.IsRecurring = &r.flags.Recurring
	}
	if changed("frequency") {
		f := model.Frequency(strings.ToLower(r.flags.Frequency))
		patch.RecurringFrequency = &f
	}
	if changed("note") {
		patch.Notes = &r.flags.Note
	}
	if changed("attach") {
		patch.Attachments = &r.flags.Attachments
	}

	if patch.IsEmpty() {
		pterm.Info.Println("Nothing to change")
		return nil
	}

	return r.save(cmd.Context(), patch, r.flags.Currency)
}

func (r *editRunner) InteractiveMode(ctx context.Context) error {
	if err := views.RenderTransactionDetail(views.TransactionDetail(r.svc, r.tx)); err != nil {
		return err
	}

	txType, err := prompts.PromptTransactionType(r.tx.Type)
	if err != nil {
		return err
	}

	accountID, err := prompts.PromptAccountSelection(r.svc.Account.List(), "Account:", r.tx.AccountID, func(acc model.Account) string {
		return r.svc.Report.Format(acc.Balance)
	})
	if err != nil {
		return err
	}

	categoryID, err := prompts.PromptCategorySelection(r.svc.Category.List(txType), r.tx.CategoryID)
	if err != nil {
		return err
	}

	amountInput, err := prompts.PromptInput(
		fmt.Sprintf("Amount (%s):", r.svc.Config.Currencies.Base),
		r.tx.Amount.StringFixed(2),
		validation.ValidateAmount,
	)
	if err != nil {
		return err
	}
	amount, err := utils.ParseAmount(amountInput)
	if err != nil {
		return err
	}

	dateInput, err := prompts.PromptTransactionDate(r.tx.Date, validation.ValidateDate)
	if err != nil {
		return err
	}
	date, err := constants.ParseDate(dateInput)
	if err != nil {
		return err
	}

	desc, err := prompts.PromptInput("Description:", r.tx.Description, nil)
	if err != nil {
		return err
	}

	patch := model.TransactionPatch{}
	if txType != r.tx.Type {
		patch.Type = &txType
	}
	if accountID != r.tx.AccountID {
		patch.AccountID = &accountID
	}
	if categoryID != r.tx.CategoryID {
		patch.CategoryID = &categoryID
	}
	if !amount.Equal(r.tx.Amount) {
		patch.Amount = &amount
	}
	if date.Format(constants.DateFormat) != r.tx.Date.Format(constants.DateFormat) {
		patch.Date = &date
	}
	if desc = strings.TrimSpace(desc); desc != r.tx.Description {
		patch.Description = &desc
	}

	if patch.IsEmpty() {
		pterm.Info.Println("Nothing changed")
		return nil
	}

	return r.save(ctx, patch, "")
}

func (r *editRunner) save(ctx context.Context, patch model.TransactionPatch, currency string) error {
	tx, err := r.svc.Transaction.Update(ctx, r.tx.ID, patch, currency)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	pterm.Success.Printf("Transaction %s updated successfully\n", tx.ID)
	return views.RenderTransactionDetail(views.TransactionDetail(r.svc, tx))
}
