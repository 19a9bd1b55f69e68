package dto

import (
	"time"

	"spenzly/internal/models"

	"github.com/google/uuid"
)

// CreateAccountRequest is the payload for POST /accounts. Balance is a
// decimal string such as "1250.00".
type CreateAccountRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Type      string `json:"type" validate:"required,account_type"`
	Balance   string `json:"balance" validate:"required,decimal_amount"`
	IsDefault bool   `json:"isDefault"`
}

type AccountResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Balance          string    `json:"balance"`
	IsDefault        bool      `json:"isDefault"`
	TransactionCount *int64    `json:"transactionCount,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type CreateAccountResponse struct {
	Account AccountResponse `json:"account"`
	Message string          `json:"message"`
}

type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Type:      account.Type,
		Balance:   account.BalanceString(),
		IsDefault: account.IsDefault,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func NewAccountWithCountResponse(account *models.AccountWithTransactionCount) AccountResponse {
	response := NewAccountResponse(&account.Account)
	count := account.TransactionCount
	response.TransactionCount = &count
	return response
}

// NewAccountListResponse preserves the ledger's ordering and always encodes
// an array, never null.
func NewAccountListResponse(accounts []models.AccountWithTransactionCount) AccountListResponse {
	items := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, NewAccountWithCountResponse(&accounts[i]))
	}
	return AccountListResponse{
		Accounts: items,
		Total:    len(items),
	}
}

type UpdateAccountResponse struct {
	Account AccountResponse `json:"account"`
	Message string          `json:"message"`
}
