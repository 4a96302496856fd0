package cmd

import (
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type statsFlags struct {
	Period string
	Type   string
}

type statsRunner struct {
	svc   *service.Service
	flags *statsFlags
}

func NewStatsCmd(svc *service.Service) *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"report"},
		Short:   "Show income, expenses and savings for a period",
		Long: `Show income, expenses and net savings for a period, together with a
breakdown of spending (or income) by category.

Periods: day, week (starting Sunday), month, year, all.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &statsRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Period, "period", "p", string(ledger.PeriodMonth), "Period: day, week, month, year, all")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", string(model.TxExpense), "Breakdown by expense or income categories")

	return cmd
}

func (r *statsRunner) Run() error {
	period, err := ledger.ParsePeriod(r.flags.Period)
	if err != nil {
		return err
	}

	txType, err := ledger.ParseTransactionType(r.flags.Type)
	if err != nil {
		return err
	}

	overview := r.svc.Report.Summary(period)

	since := ""
	if overview.Bounded {
		since = overview.Start.Format(constants.DateFormat)
	}

	item := views.StatsItem{
		Period:       string(period),
		Since:        since,
		Income:       r.svc.Report.Format(overview.Income),
		Expense:      r.svc.Report.Format(overview.Expense),
		Net:          r.svc.Report.Format(overview.Net),
		NetNegative:  overview.Net.IsNegative(),
		TotalBalance: r.svc.Report.Format(overview.TotalBalance),
		Count:        overview.Count,
	}

	slices := r.svc.Report.CategoryBreakdown(period, txType)
	breakdown := make([]views.CategoryShareItem, 0, len(slices))
	for _, s := range slices {
		breakdown = append(breakdown, views.CategoryShareItem{
			Name:       s.Name,
			Total:      r.svc.Report.Format(s.Total),
			Percentage: s.Percentage.StringFixed(1) + "%",
			Share:      int(s.Percentage.Round(0).IntPart()),
		})
	}

	return views.RenderStats(item, views.TypeLabel(txType)+" by Category", breakdown)
}
