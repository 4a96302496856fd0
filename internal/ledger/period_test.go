package ledger

import (
	"testing"
	"time"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dated(id string, t model.TransactionType, amount string, date time.Time) model.Transaction {
	return model.Transaction{ID: id, Type: t, Amount: dec(amount), Date: date, CategoryID: "c"}
}

func day(m time.Month, d, h int) time.Time {
	return time.Date(2025, m, d, h, 0, 0, 0, time.UTC)
}

func periodFixture() []model.Transaction {
	return []model.Transaction{
		dated("today", model.TxExpense, "1", day(time.March, 12, 10)),
		dated("future", model.TxExpense, "1", day(time.March, 20, 9)),
		dated("monday", model.TxExpense, "1", day(time.March, 10, 18)),
		dated("sunday-midnight", model.TxExpense, "1", day(time.March, 9, 0)),
		dated("last-saturday", model.TxExpense, "1", day(time.March, 8, 23)),
		dated("first-of-month", model.TxExpense, "1", day(time.March, 1, 0)),
		dated("february", model.TxExpense, "1", day(time.February, 28, 12)),
		dated("new-year", model.TxExpense, "1", day(time.January, 1, 0)),
		dated("last-year", model.TxExpense, "1", time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)),
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		period  Period
		want    time.Time
		bounded bool
	}{
		{PeriodDay, day(time.March, 12, 0), true},
		{PeriodWeek, day(time.March, 9, 0), true},
		{PeriodMonth, day(time.March, 1, 0), true},
		{PeriodYear, day(time.January, 1, 0), true},
		{PeriodAll, time.Time{}, false},
		{Period("decade"), time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got, bounded := WindowStart(tt.period, fixedNow)
			assert.Equal(t, tt.bounded, bounded)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestWindowStart_WeekOnSunday(t *testing.T) {
	sunday := time.Date(2025, time.March, 9, 8, 0, 0, 0, time.UTC)
	got, _ := WindowStart(PeriodWeek, sunday)
	assert.True(t, got.Equal(day(time.March, 9, 0)))
}

func TestWindowStart_WeekAcrossMonthBoundary(t *testing.T) {
	tuesday := time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)
	got, _ := WindowStart(PeriodWeek, tuesday)
	assert.True(t, got.Equal(day(time.March, 30, 0)), "got %s", got)
}

func TestWindowStart_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	now := time.Date(2025, time.March, 12, 1, 0, 0, 0, loc)
	got, _ := WindowStart(PeriodDay, now)
	assert.Equal(t, loc, got.Location())
	assert.True(t, got.Equal(time.Date(2025, time.March, 12, 0, 0, 0, 0, loc)))
}

func TestFilterByPeriod(t *testing.T) {
	txns := periodFixture()
	tests := []struct {
		period Period
		want   int
	}{
		{PeriodDay, 2},
		{PeriodWeek, 4},
		{PeriodMonth, 6},
		{PeriodYear, 8},
		{PeriodAll, 9},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			assert.Len(t, FilterByPeriod(txns, tt.period, fixedNow), tt.want)
		})
	}
}

func TestFilterByPeriod_AllReturnsCopy(t *testing.T) {
	txns := periodFixture()

	got := FilterByPeriod(txns, PeriodAll, fixedNow)
	require.Len(t, got, len(txns))
	got[0].Description = "changed"

	assert.Empty(t, txns[0].Description)
}

func TestFilterByPeriod_Monotonic(t *testing.T) {
	txns := periodFixture()

	var previous map[string]bool
	for _, p := range Periods {
		current := make(map[string]bool)
		for _, tx := range FilterByPeriod(txns, p, fixedNow) {
			current[tx.ID] = true
		}
		for id := range previous {
			assert.True(t, current[id], "%s missing from %s", id, p)
		}
		previous = current
	}
}

func TestTotals_AllPeriodScenario(t *testing.T) {
	txns := []model.Transaction{
		dated("i1", model.TxIncome, "100", day(time.January, 5, 0)),
		dated("i2", model.TxIncome, "200", day(time.February, 5, 0)),
		dated("i3", model.TxIncome, "300", day(time.March, 5, 0)),
		dated("e1", model.TxExpense, "50", day(time.March, 6, 0)),
		dated("e2", model.TxExpense, "25", day(time.March, 11, 0)),
	}

	assert.True(t, IncomeTotal(txns, PeriodAll, fixedNow).Equal(dec("600")))
	assert.True(t, ExpenseTotal(txns, PeriodAll, fixedNow).Equal(dec("75")))
	assert.True(t, NetSavings(txns, PeriodAll, fixedNow).Equal(dec("525")))

	for _, p := range Periods {
		net := IncomeTotal(txns, p, fixedNow).Sub(ExpenseTotal(txns, p, fixedNow))
		assert.True(t, net.Equal(NetSavings(txns, p, fixedNow)), "period %s", p)

		s := Summarize(txns, p, fixedNow)
		assert.True(t, s.Net.Equal(net), "summary %s", p)
	}

	month := Summarize(txns, PeriodMonth, fixedNow)
	assert.True(t, month.Income.Equal(dec("300")))
	assert.True(t, month.Expense.Equal(dec("75")))
	assert.Equal(t, 3, month.Count)
	assert.True(t, month.Bounded)
}

func TestCategoryTotals(t *testing.T) {
	txns := []model.Transaction{
		{CategoryID: "food", Type: model.TxExpense, Amount: dec("30")},
		{CategoryID: "rent", Type: model.TxExpense, Amount: dec("60")},
		{CategoryID: "food", Type: model.TxExpense, Amount: dec("10")},
		{CategoryID: "salary", Type: model.TxIncome, Amount: dec("1000")},
	}

	got := CategoryTotals(txns, model.TxExpense)
	require.Len(t, got, 2)
	assert.Equal(t, "rent", got[0].CategoryID)
	assert.True(t, got[0].Total.Equal(dec("60")))
	assert.True(t, got[0].Percentage.Equal(dec("60")))
	assert.Equal(t, "food", got[1].CategoryID)
	assert.True(t, got[1].Percentage.Equal(dec("40")))
}

func TestCategoryTotals_ZeroTotalGivesZeroPercent(t *testing.T) {
	txns := []model.Transaction{
		{CategoryID: "a", Type: model.TxExpense, Amount: dec("0")},
		{CategoryID: "b", Type: model.TxExpense, Amount: dec("0")},
	}

	got := CategoryTotals(txns, model.TxExpense)
	require.Len(t, got, 2)
	for _, ct := range got {
		assert.True(t, ct.Percentage.IsZero())
	}
	assert.Empty(t, CategoryTotals(txns, model.TxIncome))
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod(" Month ")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, p)

	_, err = ParsePeriod("fortnight")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseTransactionType(t *testing.T) {
	got, err := ParseTransactionType(" Income ")
	require.NoError(t, err)
	assert.Equal(t, model.TxIncome, got)

	for _, in := range []string{"transfer", "", "savings"} {
		_, err := ParseTransactionType(in)
		assert.ErrorIs(t, err, apperrors.ErrValidation, in)
	}
}

func TestTransactionLedger_ByPeriod(t *testing.T) {
	accounts, txns := newBook()
	a := openAccount(accounts, "A", "0")

	spec := txSpec(a.ID, model.TxIncome, "5")
	spec.Date = day(time.February, 1, 0)
	_, err := txns.Add(spec)
	require.NoError(t, err)
	_, err = txns.Add(txSpec(a.ID, model.TxIncome, "5"))
	require.NoError(t, err)

	assert.Len(t, txns.ByPeriod(PeriodMonth, fixedNow), 1)
	assert.Len(t, txns.ByPeriod(PeriodYear, fixedNow), 2)
}
