package dto

import (
	"spenzly/internal/models"

	"github.com/google/uuid"
)

// DashboardResponse carries everything the dashboard page renders. Totals
// are decimal strings.
type DashboardResponse struct {
	Accounts         []AccountResponse     `json:"accounts"`
	Transactions     []TransactionResponse `json:"transactions"`
	DefaultAccountID *uuid.UUID            `json:"defaultAccountId,omitempty"`
	TotalIncome      string                `json:"totalIncome"`
	TotalExpense     string                `json:"totalExpense"`
	NetFlow          string                `json:"netFlow"`
}

func NewDashboardResponse(dashboard *models.Dashboard) DashboardResponse {
	response := DashboardResponse{
		Accounts:     NewAccountListResponse(dashboard.Accounts).Accounts,
		Transactions: NewTransactionListResponse(dashboard.Transactions).Transactions,
		TotalIncome:  dashboard.TotalIncome.StringFixed(models.BalanceScale),
		TotalExpense: dashboard.TotalExpense.StringFixed(models.BalanceScale),
		NetFlow:      dashboard.NetFlow().StringFixed(models.BalanceScale),
	}

	if account, ok := dashboard.DefaultAccount(); ok {
		id := account.ID
		response.DefaultAccountID = &id
	}

	return response
}
