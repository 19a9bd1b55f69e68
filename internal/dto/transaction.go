package dto

import (
	"time"

	"spenzly/internal/models"

	"github.com/google/uuid"
)

// CreateTransactionRequest is the payload for POST /transactions
type CreateTransactionRequest struct {
	AccountID         string    `json:"accountId" validate:"required,uuid"`
	Type              string    `json:"type" validate:"required,transaction_type"`
	Amount            string    `json:"amount" validate:"required,positive_decimal"`
	Description       string    `json:"description" validate:"max=500"`
	Date              time.Time `json:"date"`
	Category          string    `json:"category" validate:"required,max=100"`
	ReceiptURL        string    `json:"receiptUrl" validate:"omitempty,url"`
	IsRecurring       bool      `json:"isRecurring"`
	RecurringInterval string    `json:"recurringInterval" validate:"recurring_interval"`
}

type TransactionResponse struct {
	ID                uuid.UUID  `json:"id"`
	AccountID         uuid.UUID  `json:"accountId"`
	Type              string     `json:"type"`
	Amount            string     `json:"amount"`
	Description       string     `json:"description,omitempty"`
	Date              time.Time  `json:"date"`
	Category          string     `json:"category"`
	ReceiptURL        string     `json:"receiptUrl,omitempty"`
	IsRecurring       bool       `json:"isRecurring"`
	RecurringInterval *string    `json:"recurringInterval,omitempty"`
	NextRecurringDate *time.Time `json:"nextRecurringDate,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Account     AccountResponse     `json:"account"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                transaction.ID,
		AccountID:         transaction.AccountID,
		Type:              transaction.Type,
		Amount:            transaction.Amount.StringFixed(models.BalanceScale),
		Description:       transaction.Description,
		Date:              transaction.Date,
		Category:          transaction.Category,
		ReceiptURL:        transaction.ReceiptURL,
		IsRecurring:       transaction.IsRecurring,
		RecurringInterval: transaction.RecurringInterval,
		NextRecurringDate: transaction.NextRecurringDate,
		Status:            transaction.Status,
		CreatedAt:         transaction.CreatedAt,
	}
}

func NewTransactionListResponse(transactions []models.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, NewTransactionResponse(&transactions[i]))
	}
	return TransactionListResponse{
		Transactions: items,
		Total:        len(items),
	}
}
