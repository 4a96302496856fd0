package ledger

import (
	"fmt"
	"time"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/model"
)

// TransactionLedger owns the transaction collection and keeps the balances
// of the AccountRegistry in step with it.
type TransactionLedger struct {
	accounts *AccountRegistry
	order    []string
	byID     map[string]*model.Transaction
	opts     options
}

// NewTransactionLedger binds a ledger to its account registry. The ledger
// becomes the registry's reference guard, so accounts it still books on can
// not be deleted.
func NewTransactionLedger(accounts *AccountRegistry, opts ...Option) *TransactionLedger {
	l := &TransactionLedger{
		accounts: accounts,
		byID:     make(map[string]*model.Transaction),
		opts:     buildOptions(opts),
	}
	accounts.guard = l
	return l
}

// Add records a transaction and applies its effect to the owning account.
func (l *TransactionLedger) Add(spec model.TransactionSpec) (model.Transaction, error) {
	if err := checkBookable(spec.Type, spec.Amount.IsNegative()); err != nil {
		return model.Transaction{}, err
	}
	if !l.accounts.Exists(spec.AccountID) {
		return model.Transaction{}, fmt.Errorf("account %s: %w", spec.AccountID, apperrors.ErrNotFound)
	}

	now := l.opts.now()
	tx := &model.Transaction{
		ID:                 l.opts.newID(),
		Amount:             spec.Amount,
		Description:        spec.Description,
		Date:               spec.Date,
		CategoryID:         spec.CategoryID,
		AccountID:          spec.AccountID,
		Type:               spec.Type,
		IsRecurring:        spec.IsRecurring,
		RecurringFrequency: spec.RecurringFrequency,
		Attachments:        append([]string(nil), spec.Attachments...),
		Notes:              spec.Notes,
		CreatedBy:          spec.CreatedBy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	l.order = append(l.order, tx.ID)
	l.byID[tx.ID] = tx

	if err := l.accounts.adjustBalance(tx.AccountID, tx.Effect()); err != nil {
		return model.Transaction{}, err
	}

	return *tx, nil
}

// Update merges patch into the transaction. The old effect is reversed on the
// old account and the merged effect applied to the (possibly new) account.
// Fields the patch leaves unset fall back to the prior values.
func (l *TransactionLedger) Update(id string, patch model.TransactionPatch) (model.Transaction, error) {
	tx, ok := l.byID[id]
	if !ok {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
	}

	old := *tx
	merged := old
	patch.Apply(&merged)

	if err := checkBookable(merged.Type, merged.Amount.IsNegative()); err != nil {
		return model.Transaction{}, err
	}
	for _, accID := range []string{old.AccountID, merged.AccountID} {
		if !l.accounts.Exists(accID) {
			return model.Transaction{}, fmt.Errorf("account %s: %w", accID, apperrors.ErrNotFound)
		}
	}

	reversal := old.Effect().Neg()
	effect := merged.Effect()

	merged.UpdatedAt = l.opts.now()
	*tx = merged

	if old.AccountID == merged.AccountID {
		if delta := reversal.Add(effect); !delta.IsZero() {
			if err := l.accounts.adjustBalance(merged.AccountID, delta); err != nil {
				return model.Transaction{}, err
			}
		}
		return *tx, nil
	}

	if err := l.accounts.adjustBalance(old.AccountID, reversal); err != nil {
		return model.Transaction{}, err
	}
	if err := l.accounts.adjustBalance(merged.AccountID, effect); err != nil {
		return model.Transaction{}, err
	}

	return *tx, nil
}

// Delete reverses the transaction's effect on its account and removes it.
// A transaction whose account no longer exists is removed without reversal.
func (l *TransactionLedger) Delete(id string) error {
	tx, ok := l.byID[id]
	if !ok {
		return fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
	}

	if l.accounts.Exists(tx.AccountID) {
		if err := l.accounts.adjustBalance(tx.AccountID, tx.Effect().Neg()); err != nil {
			return err
		}
	}

	delete(l.byID, id)
	for i, txID := range l.order {
		if txID == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}

	return nil
}

func (l *TransactionLedger) ByID(id string) (model.Transaction, error) {
	tx, ok := l.byID[id]
	if !ok {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
	}
	return *tx, nil
}

// All returns the transactions in insertion order.
func (l *TransactionLedger) All() []model.Transaction {
	return l.collect(func(*model.Transaction) bool { return true })
}

func (l *TransactionLedger) ByAccount(accountID string) []model.Transaction {
	return l.collect(func(tx *model.Transaction) bool { return tx.AccountID == accountID })
}

func (l *TransactionLedger) ByCategory(categoryID string) []model.Transaction {
	return l.collect(func(tx *model.Transaction) bool { return tx.CategoryID == categoryID })
}

// ByPeriod returns the transactions dated inside the period window anchored at now.
func (l *TransactionLedger) ByPeriod(period Period, now time.Time) []model.Transaction {
	return FilterByPeriod(l.All(), period, now)
}

// CountByAccount reports how many transactions reference the account.
func (l *TransactionLedger) CountByAccount(accountID string) int {
	n := 0
	for _, tx := range l.byID {
		if tx.AccountID == accountID {
			n++
		}
	}
	return n
}

func (l *TransactionLedger) Len() int {
	return len(l.order)
}

// Restore replaces the collection with previously persisted transactions
// without touching account balances.
func (l *TransactionLedger) Restore(transactions []model.Transaction) {
	l.order = make([]string, 0, len(transactions))
	l.byID = make(map[string]*model.Transaction, len(transactions))
	for i := range transactions {
		tx := transactions[i]
		if _, dup := l.byID[tx.ID]; dup {
			continue
		}
		l.order = append(l.order, tx.ID)
		l.byID[tx.ID] = &tx
	}
}

func (l *TransactionLedger) collect(keep func(*model.Transaction) bool) []model.Transaction {
	out := make([]model.Transaction, 0)
	for _, id := range l.order {
		if tx := l.byID[id]; keep(tx) {
			out = append(out, *tx)
		}
	}
	return out
}

func checkBookable(t model.TransactionType, negative bool) error {
	if t == model.TxTransfer {
		return fmt.Errorf("transfer transactions are not supported: %w", apperrors.ErrValidation)
	}
	if !t.Supported() {
		return fmt.Errorf("unknown transaction type %q: %w", t, apperrors.ErrValidation)
	}
	if negative {
		return fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}
	return nil
}
