package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)

type fixture struct {
	svc    *Service
	kv     *store.MemoryStore
	cfg    *config.Config
	logs   *bytes.Buffer
	ctx    context.Context
	nextID int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, store.NewMemoryStore(), config.NewDefault())
}

func newFixtureWith(t *testing.T, kv *store.MemoryStore, cfg *config.Config) *fixture {
	t.Helper()

	f := &fixture{kv: kv, cfg: cfg, logs: &bytes.Buffer{}, ctx: context.Background()}
	logger := slog.New(slog.NewTextHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.svc = New(kv, cfg, logger,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			f.nextID++
			return fmt.Sprintf("id-%d", f.nextID)
		}),
	)
	require.NoError(t, f.svc.Load(f.ctx))
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (f *fixture) account(t *testing.T, name string) model.Account {
	t.Helper()
	for _, acc := range f.svc.Account.List() {
		if acc.Name == name {
			return acc
		}
	}
	t.Fatalf("no account named %q", name)
	return model.Account{}
}

func (f *fixture) category(t *testing.T, name string) model.Category {
	t.Helper()
	for _, c := range f.svc.Category.List("") {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no category named %q", name)
	return model.Category{}
}

func (f *fixture) expense(t *testing.T, account, category, amount string) model.TransactionSpec {
	t.Helper()
	return model.TransactionSpec{
		Amount:     dec(amount),
		Date:       fixedNow,
		CategoryID: f.category(t, category).ID,
		AccountID:  f.account(t, account).ID,
		Type:       model.TxExpense,
	}
}

func (f *fixture) income(t *testing.T, account, category, amount string) model.TransactionSpec {
	spec := f.expense(t, account, category, amount)
	spec.Type = model.TxIncome
	return spec
}
