package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// Periods lists the windows from narrowest to widest.
var Periods = []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll}

var hundred = decimal.NewFromInt(100)

func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Periods {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q (must be one of day, week, month, year, all): %w", s, apperrors.ErrValidation)
}

// ParseTransactionType accepts the bookable types, income and expense.
func ParseTransactionType(s string) (model.TransactionType, error) {
	t := model.TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Supported() {
		return "", fmt.Errorf("invalid type %q (must be income or expense): %w", s, apperrors.ErrValidation)
	}
	return t, nil
}

// WindowStart returns the inclusive lower bound of the period anchored at
// now, in now's location. The second result is false for PeriodAll (and any
// unrecognised period), which has no lower bound.
func WindowStart(p Period, now time.Time) (time.Time, bool) {
	y, m, d := now.Date()
	loc := now.Location()

	switch p {
	case PeriodDay:
		return time.Date(y, m, d, 0, 0, 0, 0, loc), true
	case PeriodWeek:
		// weeks start on Sunday
		return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, loc), true
	case PeriodMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), true
	case PeriodYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), true
	default:
		return time.Time{}, false
	}
}

// FilterByPeriod keeps the transactions dated at or after the window start.
// Future-dated transactions are not rejected.
func FilterByPeriod(txns []model.Transaction, p Period, now time.Time) []model.Transaction {
	start, bounded := WindowStart(p, now)
	if !bounded {
		return append([]model.Transaction(nil), txns...)
	}

	out := make([]model.Transaction, 0, len(txns))
	for _, tx := range txns {
		if !tx.Date.Before(start) {
			out = append(out, tx)
		}
	}
	return out
}

func IncomeTotal(txns []model.Transaction, p Period, now time.Time) decimal.Decimal {
	return sumByType(FilterByPeriod(txns, p, now), model.TxIncome)
}

func ExpenseTotal(txns []model.Transaction, p Period, now time.Time) decimal.Decimal {
	return sumByType(FilterByPeriod(txns, p, now), model.TxExpense)
}

// NetSavings is IncomeTotal minus ExpenseTotal.
func NetSavings(txns []model.Transaction, p Period, now time.Time) decimal.Decimal {
	return IncomeTotal(txns, p, now).Sub(ExpenseTotal(txns, p, now))
}

type CategoryTotal struct {
	CategoryID string
	Total      decimal.Decimal
	// Percentage of the type total, 0 when that total is 0.
	Percentage decimal.Decimal
}

// CategoryTotals groups the transactions of the given type by category,
// largest total first.
func CategoryTotals(txns []model.Transaction, t model.TransactionType) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for _, tx := range txns {
		if tx.Type != t {
			continue
		}
		sums[tx.CategoryID] = sums[tx.CategoryID].Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for id, sum := range sums {
		pct := decimal.Zero
		if !total.IsZero() {
			pct = sum.Div(total).Mul(hundred)
		}
		out = append(out, CategoryTotal{CategoryID: id, Total: sum, Percentage: pct})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].CategoryID < out[j].CategoryID
	})

	return out
}

type Summary struct {
	Period  Period
	Start   time.Time
	Bounded bool
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int
}

// Summarize computes the figures shown for a period.
func Summarize(txns []model.Transaction, p Period, now time.Time) Summary {
	filtered := FilterByPeriod(txns, p, now)
	start, bounded := WindowStart(p, now)

	income := sumByType(filtered, model.TxIncome)
	expense := sumByType(filtered, model.TxExpense)

	return Summary{
		Period:  p,
		Start:   start,
		Bounded: bounded,
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
		Count:   len(filtered),
	}
}

func sumByType(txns []model.Transaction, t model.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txns {
		if tx.Type == t {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}
