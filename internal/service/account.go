package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/constants"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	book   *book
	logger *slog.Logger
}

func (as *AccountService) Create(ctx context.Context, spec model.AccountSpec) (model.Account, error) {
	spec.Name = strings.TrimSpace(spec.Name)
	spec.Currency = strings.ToUpper(strings.TrimSpace(spec.Currency))
	if spec.Currency == "" {
		spec.Currency = as.book.settings.Currency
	}
	if err := validation.Struct(spec); err != nil {
		return model.Account{}, err
	}

	acc := as.book.accounts.Create(spec)
	as.logger.Info("account created", applog.FieldOperation, applog.OpCreate, applog.FieldAccountID, acc.ID)
	as.book.persist(ctx, constants.KeyAccounts)
	return acc, nil
}

func (as *AccountService) Update(ctx context.Context, id string, patch model.AccountPatch) (model.Account, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*patch.Currency))
		patch.Currency = &code
	}
	if err := validation.Struct(patch); err != nil {
		return model.Account{}, err
	}

	acc, err := as.book.accounts.Update(id, patch)
	if err != nil {
		return model.Account{}, err
	}
	as.logger.Info("account updated", applog.FieldOperation, applog.OpUpdate, applog.FieldAccountID, id)
	as.book.persist(ctx, constants.KeyAccounts)
	return acc, nil
}

// Delete removes an account that no transaction references.
func (as *AccountService) Delete(ctx context.Context, id string) error {
	if err := as.book.accounts.Delete(id); err != nil {
		return err
	}
	as.logger.Info("account deleted", applog.FieldOperation, applog.OpDelete, applog.FieldAccountID, id)
	as.book.persist(ctx, constants.KeyAccounts)
	return nil
}

func (as *AccountService) Get(id string) (model.Account, error) {
	return as.book.accounts.ByID(id)
}

// Find resolves an account by id, or by name ignoring case.
func (as *AccountService) Find(ref string) (model.Account, error) {
	ref = strings.TrimSpace(ref)
	if acc, err := as.book.accounts.ByID(ref); err == nil {
		return acc, nil
	}
	for _, acc := range as.book.accounts.All() {
		if strings.EqualFold(acc.Name, ref) {
			return acc, nil
		}
	}
	return model.Account{}, fmt.Errorf("account %q: %w", ref, apperrors.ErrNotFound)
}

func (as *AccountService) List() []model.Account {
	return as.book.accounts.All()
}

// TotalBalance sums every account in the base currency.
func (as *AccountService) TotalBalance() decimal.Decimal {
	return as.book.accounts.TotalBalance()
}

// TransactionCount is the number of transactions booked on the account.
func (as *AccountService) TransactionCount(id string) int {
	return as.book.txns.CountByAccount(id)
}
