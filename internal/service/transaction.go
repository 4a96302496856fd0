package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ledger"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	book   *book
	logger *slog.Logger
}

// Add records a transaction. When entryCurrency is set the amount is read as
// a value in that currency and converted to the base currency first.
func (ts *TransactionService) Add(ctx context.Context, spec model.TransactionSpec, entryCurrency string) (model.Transaction, error) {
	if spec.Date.IsZero() {
		spec.Date = ts.book.now()
	}
	if spec.CreatedBy == "" {
		spec.CreatedBy = ts.book.cfg.Defaults.User
	}
	if !spec.IsRecurring {
		spec.RecurringFrequency = ""
	}
	if err := validation.Struct(spec); err != nil {
		return model.Transaction{}, err
	}
	if err := ts.book.checkCategory(spec.CategoryID, spec.Type); err != nil {
		return model.Transaction{}, err
	}

	amount, err := ts.toBase(spec.Amount, entryCurrency)
	if err != nil {
		return model.Transaction{}, err
	}
	spec.Amount = amount

	tx, err := ts.book.txns.Add(spec)
	if err != nil {
		return model.Transaction{}, err
	}

	ts.logger.Info("transaction recorded",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldTxID, tx.ID,
		applog.FieldAccountID, tx.AccountID,
		applog.FieldAmount, tx.Amount.String())
	ts.book.persist(ctx, constants.KeyTransactions, constants.KeyAccounts)
	return tx, nil
}

// Update merges patch into the transaction and rebalances the affected
// accounts. entryCurrency applies to patch.Amount only.
func (ts *TransactionService) Update(ctx context.Context, id string, patch model.TransactionPatch, entryCurrency string) (model.Transaction, error) {
	if err := validation.Struct(patch); err != nil {
		return model.Transaction{}, err
	}

	current, err := ts.book.txns.ByID(id)
	if err != nil {
		return model.Transaction{}, err
	}

	if patch.Type != nil || patch.CategoryID != nil {
		merged := current
		patch.Apply(&merged)
		if err := ts.book.checkCategory(merged.CategoryID, merged.Type); err != nil {
			return model.Transaction{}, err
		}
	}

	if patch.Amount != nil {
		amount, err := ts.toBase(*patch.Amount, entryCurrency)
		if err != nil {
			return model.Transaction{}, err
		}
		patch.Amount = &amount
	}

	tx, err := ts.book.txns.Update(id, patch)
	if err != nil {
		return model.Transaction{}, err
	}

	ts.logger.Info("transaction updated", applog.FieldOperation, applog.OpUpdate, applog.FieldTxID, id)
	ts.book.persist(ctx, constants.KeyTransactions, constants.KeyAccounts)
	return tx, nil
}

func (ts *TransactionService) Delete(ctx context.Context, id string) error {
	if err := ts.book.txns.Delete(id); err != nil {
		return err
	}
	ts.logger.Info("transaction deleted", applog.FieldOperation, applog.OpDelete, applog.FieldTxID, id)
	ts.book.persist(ctx, constants.KeyTransactions, constants.KeyAccounts)
	return nil
}

func (ts *TransactionService) Get(id string) (model.Transaction, error) {
	return ts.book.txns.ByID(id)
}

// List narrows the transactions to the period, then applies the filter.
func (ts *TransactionService) List(period ledger.Period, filter ledger.Filter) []model.Transaction {
	txns := ledger.FilterByPeriod(ts.book.txns.All(), period, ts.book.now())
	return filter.Apply(txns)
}

// ByAccount returns the account's transactions, newest first.
func (ts *TransactionService) ByAccount(accountID string) []model.Transaction {
	txns := ts.book.txns.ByAccount(accountID)
	ledger.SortTransactions(txns, ledger.SortNewest)
	return txns
}

func (ts *TransactionService) toBase(amount decimal.Decimal, entryCurrency string) (decimal.Decimal, error) {
	code := strings.TrimSpace(entryCurrency)
	if code == "" || strings.EqualFold(code, ts.book.cfg.Currencies.Base) {
		return amount, nil
	}
	base, err := ledger.FromDisplay(amount, code, ts.book.rates)
	if err != nil {
		return decimal.Zero, err
	}
	base = base.Round(2)
	if !base.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s %s is less than 0.01 %s: %w",
			amount.String(), strings.ToUpper(code), ts.book.cfg.Currencies.Base, apperrors.ErrValidation)
	}
	return base, nil
}
