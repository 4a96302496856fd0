package ledger

import (
	"fmt"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

// referenceGuard answers whether an account is still referenced elsewhere.
type referenceGuard interface {
	CountByAccount(accountID string) int
}

// AccountRegistry owns the account collection and its balances.
type AccountRegistry struct {
	order []string
	byID  map[string]*model.Account
	guard referenceGuard
	opts  options
}

func NewAccountRegistry(opts ...Option) *AccountRegistry {
	return &AccountRegistry{
		byID: make(map[string]*model.Account),
		opts: buildOptions(opts),
	}
}

// Create stores a new account. Input validation is the caller's concern.
func (r *AccountRegistry) Create(spec model.AccountSpec) model.Account {
	now := r.opts.now()
	acc := &model.Account{
		ID:             r.opts.newID(),
		Name:           spec.Name,
		Type:           spec.Type,
		Balance:        spec.InitialBalance,
		OpeningBalance: spec.InitialBalance,
		Currency:       spec.Currency,
		Color:          spec.Color,
		Icon:           spec.Icon,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	r.order = append(r.order, acc.ID)
	r.byID[acc.ID] = acc

	return *acc
}

// Update merges patch into the account and refreshes UpdatedAt.
func (r *AccountRegistry) Update(id string, patch model.AccountPatch) (model.Account, error) {
	acc, ok := r.byID[id]
	if !ok {
		return model.Account{}, fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
	}

	if patch.Apply(acc) {
		acc.UpdatedAt = r.opts.now()
	}

	return *acc, nil
}

// Delete removes the account unless a transaction still references it.
func (r *AccountRegistry) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
	}

	if r.guard != nil {
		if n := r.guard.CountByAccount(id); n > 0 {
			return fmt.Errorf("account %s is used by %d transaction(s): %w", id, n, apperrors.ErrHasDependentTransactions)
		}
	}

	delete(r.byID, id)
	for i, accID := range r.order {
		if accID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *AccountRegistry) ByID(id string) (model.Account, error) {
	acc, ok := r.byID[id]
	if !ok {
		return model.Account{}, fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
	}
	return *acc, nil
}

func (r *AccountRegistry) Exists(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// All returns the accounts in creation order.
func (r *AccountRegistry) All() []model.Account {
	accounts := make([]model.Account, 0, len(r.order))
	for _, id := range r.order {
		accounts = append(accounts, *r.byID[id])
	}
	return accounts
}

func (r *AccountRegistry) Len() int {
	return len(r.order)
}

// TotalBalance sums every account balance.
func (r *AccountRegistry) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, acc := range r.byID {
		total = total.Add(acc.Balance)
	}
	return total
}

// Restore replaces the collection with previously persisted accounts.
// Balances and timestamps are taken as-is.
func (r *AccountRegistry) Restore(accounts []model.Account) {
	r.order = make([]string, 0, len(accounts))
	r.byID = make(map[string]*model.Account, len(accounts))
	for i := range accounts {
		acc := accounts[i]
		if _, dup := r.byID[acc.ID]; dup {
			continue
		}
		r.order = append(r.order, acc.ID)
		r.byID[acc.ID] = &acc
	}
}

// adjustBalance is reserved for the transaction ledger.
func (r *AccountRegistry) adjustBalance(id string, delta decimal.Decimal) error {
	acc, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
	}
	acc.Balance = acc.Balance.Add(delta)
	acc.UpdatedAt = r.opts.now()
	return nil
}
