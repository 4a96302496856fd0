package transaction

import (
	"fmt"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Period     string
	Search     string
	Types      []string
	Accounts   []string
	Categories []string
	Min        string
	Max        string
	Sort       string
	Limit      int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions",
		Long: `List transactions for a period, optionally narrowed by search text,
type, account, category and amount range.

Example: tally transaction list -p month --type expense --sort highest`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Period, "period", "p", string(ledger.PeriodAll), "Period: day, week, month, year, all")
	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Match description or notes")
	cmd.Flags().StringSliceVarP(&flags.Types, "type", "t", nil, "Only these types: income, expense")
	cmd.Flags().StringSliceVar(&flags.Accounts, "account", nil, "Only these accounts (id or name)")
	cmd.Flags().StringSliceVar(&flags.Categories, "category", nil, "Only these categories (id or name)")
	cmd.Flags().StringVar(&flags.Min, "min", "", "Minimum amount")
	cmd.Flags().StringVar(&flags.Max, "max", "", "Maximum amount")
	cmd.Flags().StringVar(&flags.Sort, "sort", string(ledger.SortNewest), "Order: newest, oldest, highest, lowest")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Show at most this many transactions (0 for all)")

	return cmd
}

func (r *listRunner) Run() error {
	period, err := ledger.ParsePeriod(r.flags.Period)
	if err != nil {
		return err
	}

	filter, err := r.buildFilter()
	if err != nil {
		return err
	}

	txns := r.svc.Transaction.List(period, filter)
	if len(txns) == 0 {
		pterm.Info.Println("No transactions found")
		return nil
	}

	total := len(txns)
	if r.flags.Limit > 0 && total > r.flags.Limit {
		txns = txns[:r.flags.Limit]
	}

	title := fmt.Sprintf("Transactions: %s (%d of %d)", period, len(txns), total)
	return views.NewTransactionListView().Render(views.TransactionItems(r.svc, txns), title)
}

func (r *listRunner) buildFilter() (ledger.Filter, error) {
	order, err := ledger.ParseSortOrder(r.flags.Sort)
	if err != nil {
		return ledger.Filter{}, err
	}

	filter := ledger.Filter{
		Search: r.flags.Search,
		Sort:   order,
	}

	for _, t := range r.flags.Types {
		txType, err := ledger.ParseTransactionType(t)
		if err != nil {
			return ledger.Filter{}, err
		}
		filter.Types = append(filter.Types, txType)
	}

	for _, ref := range r.flags.Accounts {
		acc, err := r.svc.Account.Find(ref)
		if err != nil {
			return ledger.Filter{}, err
		}
		filter.AccountIDs = append(filter.AccountIDs, acc.ID)
	}

	for _, ref := range r.flags.Categories {
		c, err := r.svc.Category.Find(ref, "")
		if err != nil {
			return ledger.Filter{}, err
		}
		filter.CategoryIDs = append(filter.CategoryIDs, c.ID)
	}

	if r.flags.Min != "" {
		lo, err := utils.ParseAmount(r.flags.Min)
		if err != nil {
			return ledger.Filter{}, fmt.Errorf("invalid --min %q: %w", r.flags.Min, err)
		}
		filter.MinAmount = &lo
	}
	if r.flags.Max != "" {
		hi, err := utils.ParseAmount(r.flags.Max)
		if err != nil {
			return ledger.Filter{}, fmt.Errorf("invalid --max %q: %w", r.flags.Max, err)
		}
		filter.MaxAmount = &hi
	}

	return filter, nil
}

// printRecent shows the latest transactions after a change.
func printRecent(svc *service.Service) error {
	recent := svc.Report.Recent(ledger.PeriodAll, constants.DefaultRecentLimit)
	if len(recent) == 0 {
		return nil
	}
	return views.NewTransactionListView().Render(views.TransactionItems(svc, recent), fmt.Sprintf("Recent Transactions (last %d)", len(recent)))
}
