package ledger

import (
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

// BalanceDrift describes an account whose stored balance disagrees with
// its opening balance plus the effects of the transactions booked on it.
type BalanceDrift struct {
	AccountID string
	Stored    decimal.Decimal
	Expected  decimal.Decimal
}

type AuditReport struct {
	Drifts []BalanceDrift
	// Orphans are transactions whose account no longer exists.
	Orphans []model.Transaction
}

func (a AuditReport) Clean() bool {
	return len(a.Drifts) == 0 && len(a.Orphans) == 0
}

// Audit recomputes every balance from scratch.
func (l *TransactionLedger) Audit() AuditReport {
	expected := make(map[string]decimal.Decimal, l.accounts.Len())
	for _, acc := range l.accounts.All() {
		expected[acc.ID] = acc.OpeningBalance
	}

	var report AuditReport
	for _, tx := range l.All() {
		sum, ok := expected[tx.AccountID]
		if !ok {
			report.Orphans = append(report.Orphans, tx)
			continue
		}
		expected[tx.AccountID] = sum.Add(tx.Effect())
	}

	for _, acc := range l.accounts.All() {
		if want := expected[acc.ID]; !acc.Balance.Equal(want) {
			report.Drifts = append(report.Drifts, BalanceDrift{
				AccountID: acc.ID,
				Stored:    acc.Balance,
				Expected:  want,
			})
		}
	}

	return report
}
