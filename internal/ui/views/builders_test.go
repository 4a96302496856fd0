package views

import (
	"context"
	"testing"
	"time"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(store.NewMemoryStore(), config.NewDefault(), nil,
		service.WithClock(func() time.Time { return time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC) }))
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestTransactionItems(t *testing.T) {
	svc := newService(t)
	cash, err := svc.Account.Find("Cash")
	require.NoError(t, err)
	food, err := svc.Category.Find("Food & Dining", model.TxExpense)
	require.NoError(t, err)

	tx, err := svc.Transaction.Add(context.Background(), model.TransactionSpec{
		Amount:      decimal.NewFromInt(1200),
		CategoryID:  food.ID,
		AccountID:   cash.ID,
		Type:        model.TxExpense,
		Description: "Banquet",
		IsRecurring: true,
	}, "")
	require.NoError(t, err)
	require.NoError(t, svc.Category.Delete(context.Background(), food.ID))

	items := TransactionItems(svc, []model.Transaction{tx})
	require.Len(t, items, 1)
	assert.Equal(t, "2025-03-12", items[0].Date)
	assert.Equal(t, "Cash", items[0].Account)
	assert.Equal(t, "Uncategorized", items[0].Category)
	assert.Equal(t, "-$1,200.00", items[0].Amount)

	detail := TransactionDetail(svc, tx)
	assert.Equal(t, "yes", detail.Recurring)
	assert.Equal(t, "Banquet", detail.Description)
}

func TestAccountItems(t *testing.T) {
	svc := newService(t)

	items := AccountItems(svc)
	require.Len(t, items, 3)
	assert.Equal(t, "$500.00", items[0].Balance)
	assert.True(t, items[2].Negative)
	assert.Equal(t, "-$350.00", items[2].Balance)
}
