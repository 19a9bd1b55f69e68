package models

import "github.com/shopspring/decimal"

// Dashboard is the aggregate the dashboard page renders in one request.
type Dashboard struct {
	Accounts     []AccountWithTransactionCount
	Transactions []Transaction
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// NetFlow is income minus expense across every transaction in the dashboard.
func (d *Dashboard) NetFlow() decimal.Decimal {
	return d.TotalIncome.Sub(d.TotalExpense)
}

// DefaultAccount returns the user's default account, if one exists.
func (d *Dashboard) DefaultAccount() (*AccountWithTransactionCount, bool) {
	for i := range d.Accounts {
		if d.Accounts[i].IsDefault {
			return &d.Accounts[i], true
		}
	}
	return nil, false
}

// TransactionTotals sums income and expense amounts separately.
func TransactionTotals(transactions []Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for i := range transactions {
		switch transactions[i].Type {
		case TransactionTypeIncome:
			income = income.Add(transactions[i].Amount)
		case TransactionTypeExpense:
			expense = expense.Add(transactions[i].Amount)
		}
	}
	return income, expense
}
