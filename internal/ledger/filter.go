package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortHighest SortOrder = "highest"
	SortLowest  SortOrder = "lowest"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest, SortHighest, SortLowest:
		return o, nil
	default:
		return "", fmt.Errorf("unknown sort order %q: %w", s, apperrors.ErrValidation)
	}
}

// Filter narrows a transaction list. Empty fields match everything.
type Filter struct {
	// Search matches description or notes, case-insensitive.
	Search      string
	CategoryIDs []string
	AccountIDs  []string
	Types       []model.TransactionType
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	Sort        SortOrder
}

// Apply returns the matching transactions in the requested order.
func (f Filter) Apply(txns []model.Transaction) []model.Transaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.Transaction, 0, len(txns))
	for _, tx := range txns {
		if search != "" &&
			!strings.Contains(strings.ToLower(tx.Description), search) &&
			!strings.Contains(strings.ToLower(tx.Notes), search) {
			continue
		}
		if len(f.CategoryIDs) > 0 && !contains(f.CategoryIDs, tx.CategoryID) {
			continue
		}
		if len(f.AccountIDs) > 0 && !contains(f.AccountIDs, tx.AccountID) {
			continue
		}
		if len(f.Types) > 0 && !contains(f.Types, tx.Type) {
			continue
		}
		if f.MinAmount != nil && tx.Amount.LessThan(*f.MinAmount) {
			continue
		}
		if f.MaxAmount != nil && tx.Amount.GreaterThan(*f.MaxAmount) {
			continue
		}
		out = append(out, tx)
	}

	SortTransactions(out, f.Sort)
	return out
}

// SortTransactions orders txns in place; ties keep their original order.
func SortTransactions(txns []model.Transaction, order SortOrder) {
	var less func(a, b model.Transaction) bool
	switch order {
	case SortOldest:
		less = func(a, b model.Transaction) bool { return a.Date.Before(b.Date) }
	case SortHighest:
		less = func(a, b model.Transaction) bool { return a.Amount.GreaterThan(b.Amount) }
	case SortLowest:
		less = func(a, b model.Transaction) bool { return a.Amount.LessThan(b.Amount) }
	default:
		less = func(a, b model.Transaction) bool { return a.Date.After(b.Date) }
	}
	sort.SliceStable(txns, func(i, j int) bool { return less(txns[i], txns[j]) })
}

// Recent returns at most n transactions, newest first.
func Recent(txns []model.Transaction, n int) []model.Transaction {
	out := append([]model.Transaction(nil), txns...)
	SortTransactions(out, SortNewest)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
