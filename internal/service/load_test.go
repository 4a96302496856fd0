package service

import (
	"context"
	"testing"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SeedsFirstRun(t *testing.T) {
	f := newFixture(t)

	accounts := f.svc.Account.List()
	require.Len(t, accounts, 3)
	assert.Equal(t, "Cash", accounts[0].Name)
	assert.Equal(t, "USD", accounts[0].Currency)
	assert.True(t, f.svc.Account.TotalBalance().Equal(dec("2650")))
	assert.True(t, f.account(t, "Credit Card").Balance.Equal(dec("-350")))

	assert.Len(t, f.svc.Category.List(""), len(ledger.DefaultCategories))

	settings := f.svc.Settings.Get()
	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, "en", settings.Language)
	assert.True(t, settings.Notifications)
	assert.False(t, settings.DarkMode)

	assert.Equal(t, 1, f.kv.Saves[constants.KeyAccounts])
	assert.Equal(t, 1, f.kv.Saves[constants.KeyCategories])
	assert.Equal(t, 1, f.kv.Saves[constants.KeySettings])
	_, err := f.kv.Load(context.Background(), constants.KeyTransactions)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestLoad_WithoutStarterAccounts(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Defaults.SeedAccounts = false

	f := newFixtureWith(t, store.NewMemoryStore(), cfg)
	assert.Empty(t, f.svc.Account.List())
	assert.Zero(t, f.kv.Saves[constants.KeyAccounts])
	assert.NotEmpty(t, f.svc.Category.List(""))
}

func TestLoad_RestoresSavedState(t *testing.T) {
	kv := store.NewMemoryStore()
	first := newFixtureWith(t, kv, config.NewDefault())

	tx, err := first.svc.Transaction.Add(first.ctx, first.expense(t, "Cash", "Food & Dining", "42.50"), "")
	require.NoError(t, err)
	_, err = first.svc.Settings.SetCurrency(first.ctx, "EUR")
	require.NoError(t, err)

	second := newFixtureWith(t, kv, config.NewDefault())
	assert.Len(t, second.svc.Account.List(), 3, "no reseeding")
	assert.True(t, second.account(t, "Cash").Balance.Equal(dec("457.50")))

	restored, err := second.svc.Transaction.Get(tx.ID)
	require.NoError(t, err)
	assert.True(t, restored.Amount.Equal(dec("42.50")))
	assert.True(t, restored.Date.Equal(fixedNow))
	assert.Equal(t, "EUR", second.svc.Settings.Get().Currency)
	assert.NotContains(t, second.logs.String(), "does not match")
}

func TestLoad_CorruptBlob(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Save(context.Background(), constants.KeyAccounts, []byte("{not json")))

	svc := New(kv, config.NewDefault(), nil)
	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load accounts")
}

func TestLoad_NewerSnapshotVersion(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Save(context.Background(), constants.KeySettings, []byte(`{"version":2,"state":{}}`)))

	err := New(kv, config.NewDefault(), nil).Load(context.Background())
	assert.ErrorContains(t, err, "newer version")
}

func TestLoad_LogsBalanceDrift(t *testing.T) {
	kv := store.NewMemoryStore()
	blob := []byte(`{"version":1,"state":[{"id":"a","name":"Cash","type":"cash","balance":"90","openingBalance":"100","currency":"USD"}]}`)
	require.NoError(t, kv.Save(context.Background(), constants.KeyAccounts, blob))

	f := newFixtureWith(t, kv, config.NewDefault())
	assert.Contains(t, f.logs.String(), "account balance does not match its transactions")
	assert.Contains(t, f.logs.String(), "account_id=a")
}

func TestPersist_FailureIsLoggedNotReturned(t *testing.T) {
	f := newFixture(t)
	f.kv.FailSave = assert.AnError

	_, err := f.svc.Transaction.Add(f.ctx, f.expense(t, "Cash", "Shopping", "20"), "")
	require.NoError(t, err)
	assert.True(t, f.account(t, "Cash").Balance.Equal(dec("480")), "in-memory state kept")
	assert.Contains(t, f.logs.String(), "failed to persist collection")
	assert.Contains(t, f.logs.String(), constants.KeyTransactions)
}
