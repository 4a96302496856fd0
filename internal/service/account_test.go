package service

import (
	"testing"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Create(t *testing.T) {
	f := newFixture(t)

	acc, err := f.svc.Account.Create(f.ctx, model.AccountSpec{
		Name:           "  Savings  ",
		Type:           model.AccountSavings,
		InitialBalance: dec("1000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Savings", acc.Name)
	assert.Equal(t, "USD", acc.Currency, "defaults to the display currency")
	assert.True(t, acc.OpeningBalance.Equal(dec("1000")))
	assert.True(t, f.svc.Account.TotalBalance().Equal(dec("3650")))

	_, err = f.svc.Account.Create(f.ctx, model.AccountSpec{Name: " ", Type: model.AccountCash})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = f.svc.Account.Create(f.ctx, model.AccountSpec{Name: "Wallet", Type: "purse"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Len(t, f.svc.Account.List(), 4)
}

func TestAccountService_Update(t *testing.T) {
	f := newFixture(t)
	cash := f.account(t, "Cash")

	updated, err := f.svc.Account.Update(f.ctx, cash.ID, model.AccountPatch{
		Name:     ptr("Wallet"),
		Currency: ptr("eur"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Wallet", updated.Name)
	assert.Equal(t, "EUR", updated.Currency)
	assert.True(t, updated.Balance.Equal(dec("500")))

	_, err = f.svc.Account.Update(f.ctx, cash.ID, model.AccountPatch{Color: ptr("green")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = f.svc.Account.Update(f.ctx, "missing", model.AccountPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountService_DeleteBlockedByTransactions(t *testing.T) {
	f := newFixture(t)
	cash := f.account(t, "Cash")

	tx, err := f.svc.Transaction.Add(f.ctx, f.expense(t, "Cash", "Shopping", "10"), "")
	require.NoError(t, err)
	assert.Equal(t, 1, f.svc.Account.TransactionCount(cash.ID))

	assert.ErrorIs(t, f.svc.Account.Delete(f.ctx, cash.ID), apperrors.ErrHasDependentTransactions)
	_, err = f.svc.Account.Get(cash.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Transaction.Delete(f.ctx, tx.ID))
	require.NoError(t, f.svc.Account.Delete(f.ctx, cash.ID))
	_, err = f.svc.Account.Get(cash.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, f.svc.Account.Delete(f.ctx, cash.ID), apperrors.ErrNotFound)
}

func TestAccountService_Find(t *testing.T) {
	f := newFixture(t)
	bank := f.account(t, "Bank Account")

	got, err := f.svc.Account.Find(bank.ID)
	require.NoError(t, err)
	assert.Equal(t, bank.ID, got.ID)

	got, err = f.svc.Account.Find(" bank account ")
	require.NoError(t, err)
	assert.Equal(t, bank.ID, got.ID)

	_, err = f.svc.Account.Find("Piggy Bank")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
