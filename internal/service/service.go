// Package service is the use-case layer the CLI talks to. It validates
// input, drives the ledger and persists each collection after a successful
// mutation.
package service

import (
	"log/slog"
	"time"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ledger"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Category    *CategoryService
	Report      *ReportService
	Settings    *SettingsService
	Config      *config.Config

	book *book
}

// book is the state shared by the sub-services.
type book struct {
	accounts   *ledger.AccountRegistry
	txns       *ledger.TransactionLedger
	categories *ledger.CategoryRegistry
	settings   model.Settings

	kv     store.KVStore
	cfg    *config.Config
	rates  ledger.RateTable
	logger *slog.Logger
	now    func() time.Time
}

type options struct {
	now       func() time.Time
	ledgerOpt []ledger.Option
}

type Option func(*options)

// WithClock fixes the time source for timestamps and period windows.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
		o.ledgerOpt = append(o.ledgerOpt, ledger.WithClock(now))
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.ledgerOpt = append(o.ledgerOpt, ledger.WithIDGenerator(newID))
	}
}

func New(kv store.KVStore, cfg *config.Config, logger *slog.Logger, opts ...Option) *Service {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = applog.Discard()
	}

	accounts := ledger.NewAccountRegistry(o.ledgerOpt...)
	b := &book{
		accounts:   accounts,
		txns:       ledger.NewTransactionLedger(accounts, o.ledgerOpt...),
		categories: ledger.NewCategoryRegistry(o.ledgerOpt...),
		settings:   defaultSettings(cfg),
		kv:         kv,
		cfg:        cfg,
		rates:      cfg.Currencies.RateTable(),
		logger:     logger,
		now:        o.now,
	}

	return &Service{
		Account:     &AccountService{book: b, logger: applog.Component(logger, applog.ComponentAccount)},
		Transaction: &TransactionService{book: b, logger: applog.Component(logger, applog.ComponentTx)},
		Category:    &CategoryService{book: b, logger: applog.Component(logger, applog.ComponentCategory)},
		Report:      &ReportService{book: b},
		Settings:    &SettingsService{book: b, logger: applog.Component(logger, applog.ComponentSettings)},
		Config:      cfg,
		book:        b,
	}
}

func defaultSettings(cfg *config.Config) model.Settings {
	return model.Settings{
		Currency:      cfg.Defaults.Currency,
		Language:      cfg.Defaults.Language,
		DarkMode:      false,
		Notifications: true,
	}
}
