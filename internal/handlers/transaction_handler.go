package handlers

import (
	"net/http"

	"spenzly/internal/dto"
	"spenzly/internal/errors"
	"spenzly/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerService services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// CreateTransaction records an income or expense against one of the caller's accounts
// @Summary Record a transaction
// @Description Adds the transaction and adjusts the account balance in one step. INCOME credits, EXPENSE debits.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse "Transaction recorded"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction failed validation"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	externalUserID, err := getExternalUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUnauthenticated)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	if req.Date.IsZero() {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date: is required"))
	}

	transaction, account, err := h.ledgerService.RecordTransaction(c.Request().Context(), externalUserID, services.RecordTransactionInput{
		AccountID:         accountID,
		Type:              req.Type,
		Amount:            req.Amount,
		Description:       req.Description,
		Date:              req.Date,
		Category:          req.Category,
		ReceiptURL:        req.ReceiptURL,
		IsRecurring:       req.IsRecurring,
		RecurringInterval: req.RecurringInterval,
	})
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: dto.NewTransactionResponse(transaction),
		Account:     dto.NewAccountResponse(account),
	})
}

// ListDashboardTransactions returns the caller's transactions, most recent first
// @Summary List dashboard transactions
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.TransactionListResponse "Transactions retrieved successfully"
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - Caller has no user record"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/transactions [get]
func (h *TransactionHandler) ListDashboardTransactions(c echo.Context) error {
	externalUserID, err := getExternalUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUnauthenticated)
	}

	transactions, err := h.ledgerService.ListTransactionsForDashboard(c.Request().Context(), externalUserID)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}
