package service

import (
	"context"
	"fmt"

	"github.com/hance08/tally/internal/constants"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

// StarterAccounts are created on first start when defaults.seed_accounts is set.
var StarterAccounts = []model.AccountSpec{
	{Name: "Cash", Type: model.AccountCash, InitialBalance: decimal.NewFromInt(500), Color: "#4CD964", Icon: "wallet"},
	{Name: "Bank Account", Type: model.AccountBank, InitialBalance: decimal.NewFromInt(2500), Color: "#3E7BFA", Icon: "building"},
	{Name: "Credit Card", Type: model.AccountCredit, InitialBalance: decimal.NewFromInt(-350), Color: "#FF3B30", Icon: "credit-card"},
}

// Load restores every collection from the store. Collections that were never
// saved are seeded with defaults and written back.
func (s *Service) Load(ctx context.Context) error {
	b := s.book
	logger := applog.Component(b.logger, applog.ComponentApp)

	settings, found, err := loadSnapshot[model.Settings](ctx, b.kv, constants.KeySettings)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if found {
		b.settings = settings
	} else {
		b.settings = defaultSettings(b.cfg)
		b.persist(ctx, constants.KeySettings)
	}

	accounts, found, err := loadSnapshot[[]model.Account](ctx, b.kv, constants.KeyAccounts)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	if found {
		b.accounts.Restore(accounts)
	} else if b.cfg.Defaults.SeedAccounts {
		for _, spec := range StarterAccounts {
			spec.Currency = b.settings.Currency
			b.accounts.Create(spec)
		}
		logger.Info("seeded starter accounts", applog.FieldOperation, applog.OpSeed, applog.FieldCount, len(StarterAccounts))
		b.persist(ctx, constants.KeyAccounts)
	}

	txns, found, err := loadSnapshot[[]model.Transaction](ctx, b.kv, constants.KeyTransactions)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	if found {
		b.txns.Restore(txns)
	}

	categories, found, err := loadSnapshot[[]model.Category](ctx, b.kv, constants.KeyCategories)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if found {
		b.categories.Restore(categories)
	} else {
		b.categories.SeedDefaults()
		logger.Info("seeded default categories", applog.FieldOperation, applog.OpSeed, applog.FieldCount, len(b.categories.All()))
		b.persist(ctx, constants.KeyCategories)
	}

	s.audit()
	return nil
}

// audit logs drift between stored balances and the booked transactions.
func (s *Service) audit() {
	logger := applog.Component(s.book.logger, applog.ComponentApp)

	report := s.book.txns.Audit()
	for _, d := range report.Drifts {
		logger.Warn("account balance does not match its transactions",
			applog.FieldOperation, applog.OpAudit,
			applog.FieldAccountID, d.AccountID,
			applog.FieldExpected, d.Expected.String(),
			applog.FieldActual, d.Stored.String())
	}
	for _, tx := range report.Orphans {
		logger.Warn("transaction references a missing account",
			applog.FieldOperation, applog.OpAudit,
			applog.FieldTxID, tx.ID,
			applog.FieldAccountID, tx.AccountID)
	}
}
