package transaction

import (
	"context"
	"testing"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(store.NewMemoryStore(), config.NewDefault(), nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func run(cmd *cobra.Command, args ...string) error {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func balance(t *testing.T, svc *service.Service, name string) decimal.Decimal {
	t.Helper()
	acc, err := svc.Account.Find(name)
	require.NoError(t, err)
	return acc.Balance
}

func TestAddFlagsMode(t *testing.T) {
	svc := newTestService(t)

	err := run(NewAddCmd(svc),
		"-a", "12.50", "-t", "expense", "--account", "cash",
		"--category", "food & dining", "-d", "Lunch", "--date", "2025-03-01", "--yes")
	require.NoError(t, err)

	txns := svc.Transaction.List(ledger.PeriodAll, ledger.Filter{})
	require.Len(t, txns, 1)
	assert.Equal(t, "Lunch", txns[0].Description)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, 1, txns[0].Date.Day())
	assert.True(t, balance(t, svc, "Cash").Equal(decimal.RequireFromString("487.5")))
}

func TestAddFlagsModeConvertsEntryCurrency(t *testing.T) {
	svc := newTestService(t)

	err := run(NewAddCmd(svc),
		"-a", "100", "-t", "income", "--account", "Bank Account",
		"--category", "Salary", "--currency", "EUR", "--yes")
	require.NoError(t, err)

	txns := svc.Transaction.List(ledger.PeriodAll, ledger.Filter{})
	require.Len(t, txns, 1)
	assert.False(t, txns[0].Amount.Equal(decimal.NewFromInt(100)), "amount should be converted to the base currency")
}

func TestAddFlagsModeErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"income category on expense", []string{"-a", "5", "-t", "expense", "--account", "Cash", "--category", "Salary", "-y"}, apperrors.ErrNotFound},
		{"unknown account", []string{"-a", "5", "--account", "Wallet", "--category", "Shopping", "-y"}, apperrors.ErrNotFound},
		{"transfer", []string{"-a", "5", "-t", "transfer", "--account", "Cash", "--category", "Shopping", "-y"}, apperrors.ErrValidation},
		{"bad amount", []string{"-a", "five", "--account", "Cash", "--category", "Shopping", "-y"}, apperrors.ErrValidation},
		{"missing account", []string{"-a", "5", "--category", "Shopping", "-y"}, apperrors.ErrValidation},
		{"bad date", []string{"-a", "5", "--account", "Cash", "--category", "Shopping", "--date", "03/01/2025", "-y"}, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			err := run(NewAddCmd(svc), tt.args...)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			assert.Empty(t, svc.Transaction.List(ledger.PeriodAll, ledger.Filter{}))
		})
	}
}

func TestEditFlagsMode(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, run(NewAddCmd(svc), "-a", "10", "--account", "Cash", "--category", "Shopping", "-y"))
	tx := svc.Transaction.List(ledger.PeriodAll, ledger.Filter{})[0]

	require.NoError(t, run(NewEditCmd(svc), tx.ID, "--amount", "25", "--account", "Bank Account", "-d", "Shoes"))

	updated, err := svc.Transaction.Get(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", updated.Description)
	assert.True(t, balance(t, svc, "Cash").Equal(decimal.NewFromInt(500)))
	assert.True(t, balance(t, svc, "Bank Account").Equal(decimal.NewFromInt(2475)))
}

func TestEditTypeNeedsMatchingCategory(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, run(NewAddCmd(svc), "-a", "10", "--account", "Cash", "--category", "Shopping", "-y"))
	tx := svc.Transaction.List(ledger.PeriodAll, ledger.Filter{})[0]

	err := run(NewEditCmd(svc), tx.ID, "--type", "income")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.ErrorIs(t, run(NewEditCmd(svc), tx.ID, "--type", "transfer"), apperrors.ErrValidation)

	require.NoError(t, run(NewEditCmd(svc), tx.ID, "--type", "income", "--category", "Gifts"))
	assert.True(t, balance(t, svc, "Cash").Equal(decimal.NewFromInt(510)))
}

func TestDeleteWithYes(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, run(NewAddCmd(svc), "-a", "10", "--account", "Cash", "--category", "Shopping", "-y"))
	tx := svc.Transaction.List(ledger.PeriodAll, ledger.Filter{})[0]

	require.NoError(t, run(NewDeleteCmd(svc), tx.ID, "--yes"))
	assert.True(t, balance(t, svc, "Cash").Equal(decimal.NewFromInt(500)))

	assert.ErrorIs(t, run(NewDeleteCmd(svc), tx.ID, "--yes"), apperrors.ErrNotFound)
}

func TestListBuildFilter(t *testing.T) {
	svc := newTestService(t)
	cash, err := svc.Account.Find("Cash")
	require.NoError(t, err)
	shopping, err := svc.Category.Find("Shopping", "")
	require.NoError(t, err)

	runner := &listRunner{svc: svc, flags: &listFlags{
		Search:     "coffee",
		Types:      []string{"Expense"},
		Accounts:   []string{"cash"},
		Categories: []string{"shopping"},
		Min:        "1,000",
		Sort:       "highest",
	}}

	filter, err := runner.buildFilter()
	require.NoError(t, err)
	assert.Equal(t, "coffee", filter.Search)
	assert.Equal(t, []model.TransactionType{model.TxExpense}, filter.Types)
	assert.Equal(t, []string{cash.ID}, filter.AccountIDs)
	assert.Equal(t, []string{shopping.ID}, filter.CategoryIDs)
	require.NotNil(t, filter.MinAmount)
	assert.True(t, filter.MinAmount.Equal(decimal.NewFromInt(1000)))
	assert.Nil(t, filter.MaxAmount)
	assert.Equal(t, ledger.SortHighest, filter.Sort)

	runner.flags.Types = []string{"transfer"}
	_, err = runner.buildFilter()
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	runner.flags.Types = nil
	runner.flags.Sort = "random"
	_, err = runner.buildFilter()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListRunRejectsUnknownPeriod(t *testing.T) {
	svc := newTestService(t)
	err := run(NewListCmd(svc), "--period", "decade")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
