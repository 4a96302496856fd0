package ledger

import (
	"fmt"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC) // a Wednesday

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func testOptions(prefix string) []Option {
	return []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs(prefix)),
	}
}

func newBook() (*AccountRegistry, *TransactionLedger) {
	accounts := NewAccountRegistry(testOptions("acc")...)
	return accounts, NewTransactionLedger(accounts, testOptions("tx")...)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openAccount(r *AccountRegistry, name, balance string) model.Account {
	return r.Create(model.AccountSpec{
		Name:           name,
		Type:           model.AccountCash,
		InitialBalance: dec(balance),
		Currency:       "USD",
	})
}

func txSpec(accountID string, t model.TransactionType, amount string) model.TransactionSpec {
	return model.TransactionSpec{
		Amount:     dec(amount),
		Date:       fixedNow,
		CategoryID: "cat-1",
		AccountID:  accountID,
		Type:       t,
		CreatedBy:  "1",
	}
}

func balanceOf(t interface{ Fatalf(string, ...any) }, r *AccountRegistry, id string) decimal.Decimal {
	acc, err := r.ByID(id)
	if err != nil {
		t.Fatalf("account %s: %v", id, err)
	}
	return acc.Balance
}
