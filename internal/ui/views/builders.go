package views

import (
	"fmt"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
)

func accountName(svc *service.Service, id string) string {
	acc, err := svc.Account.Get(id)
	if err != nil {
		return fmt.Sprintf("[missing: %s]", id)
	}
	return acc.Name
}

func recurrence(tx model.Transaction) string {
	if !tx.IsRecurring {
		return ""
	}
	if tx.RecurringFrequency == "" {
		return "yes"
	}
	return string(tx.RecurringFrequency)
}

func TransactionItems(svc *service.Service, txns []model.Transaction) []TransactionListItem {
	items := make([]TransactionListItem, 0, len(txns))
	for _, tx := range txns {
		category, _ := svc.Category.Label(tx.CategoryID)
		items = append(items, TransactionListItem{
			ID:          tx.ID,
			Date:        tx.Date.Format(constants.DateFormat),
			Type:        tx.Type,
			Account:     accountName(svc, tx.AccountID),
			Category:    category,
			Description: tx.Description,
			Amount:      svc.Report.Format(tx.Effect()),
		})
	}
	return items
}

func TransactionDetail(svc *service.Service, tx model.Transaction) TransactionDetailItem {
	category, _ := svc.Category.Label(tx.CategoryID)
	return TransactionDetailItem{
		ID:          tx.ID,
		Date:        tx.Date.Format(constants.DateFormat),
		Type:        tx.Type,
		Amount:      svc.Report.Format(tx.Effect()),
		Account:     accountName(svc, tx.AccountID),
		Category:    category,
		Description: tx.Description,
		Recurring:   recurrence(tx),
		Notes:       tx.Notes,
		Attachments: tx.Attachments,
		CreatedBy:   tx.CreatedBy,
		CreatedAt:   tx.CreatedAt.Local().Format(constants.DateTimeFormat),
		UpdatedAt:   tx.UpdatedAt.Local().Format(constants.DateTimeFormat),
	}
}

func AccountItems(svc *service.Service) []AccountListItem {
	accounts := svc.Account.List()
	items := make([]AccountListItem, 0, len(accounts))
	for _, acc := range accounts {
		items = append(items, AccountListItem{
			ID:       acc.ID,
			Name:     acc.Name,
			Type:     string(acc.Type),
			Currency: acc.Currency,
			Balance:  svc.Report.Format(acc.Balance),
			Negative: acc.Balance.IsNegative(),
			TxCount:  svc.Account.TransactionCount(acc.ID),
		})
	}
	return items
}

func AccountDetail(svc *service.Service, acc model.Account) AccountDetailItem {
	return AccountDetailItem{
		ID:             acc.ID,
		Name:           acc.Name,
		Type:           string(acc.Type),
		Currency:       acc.Currency,
		Balance:        svc.Report.Format(acc.Balance),
		OpeningBalance: svc.Report.Format(acc.OpeningBalance),
		Color:          acc.Color,
		Icon:           acc.Icon,
		CreatedAt:      acc.CreatedAt.Local().Format(constants.DateTimeFormat),
		UpdatedAt:      acc.UpdatedAt.Local().Format(constants.DateTimeFormat),
	}
}
