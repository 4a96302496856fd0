package service

import (
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
	"github.com/shopspring/decimal"
)

type ReportService struct {
	book *book
}

// Overview is a period summary plus the balance across all accounts.
type Overview struct {
	ledger.Summary
	TotalBalance decimal.Decimal
}

// CategorySlice is one row of a category breakdown.
type CategorySlice struct {
	ledger.CategoryTotal
	Name  string
	Color string
}

func (rs *ReportService) Summary(period ledger.Period) Overview {
	return Overview{
		Summary:      ledger.Summarize(rs.book.txns.All(), period, rs.book.now()),
		TotalBalance: rs.book.accounts.TotalBalance(),
	}
}

func (rs *ReportService) CategoryBreakdown(period ledger.Period, t model.TransactionType) []CategorySlice {
	txns := ledger.FilterByPeriod(rs.book.txns.All(), period, rs.book.now())
	totals := ledger.CategoryTotals(txns, t)

	out := make([]CategorySlice, 0, len(totals))
	for _, ct := range totals {
		name, color := rs.book.categoryLabel(ct.CategoryID)
		out = append(out, CategorySlice{CategoryTotal: ct, Name: name, Color: color})
	}
	return out
}

// Recent returns at most n transactions of the period, newest first.
func (rs *ReportService) Recent(period ledger.Period, n int) []model.Transaction {
	return ledger.Recent(rs.book.txns.ByPeriod(period, rs.book.now()), n)
}

// ToDisplay converts a base amount into the selected display currency.
func (rs *ReportService) ToDisplay(amount decimal.Decimal) (decimal.Decimal, error) {
	return ledger.ToDisplay(amount, rs.book.settings.Currency, rs.book.rates)
}

func (rs *ReportService) Symbol() string {
	return rs.book.cfg.Currencies.Symbol(rs.book.settings.Currency)
}

// Format renders a base amount in the display currency. If the display
// currency has no rate the amount is shown in the base currency.
func (rs *ReportService) Format(amount decimal.Decimal) string {
	shown, err := rs.ToDisplay(amount)
	if err != nil {
		return utils.FormatMoney(amount, rs.book.cfg.Currencies.Symbol(rs.book.cfg.Currencies.Base))
	}
	return utils.FormatMoney(shown, rs.Symbol())
}
