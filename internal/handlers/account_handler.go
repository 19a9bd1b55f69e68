package handlers

import (
	"net/http"

	"spenzly/internal/dto"
	"spenzly/internal/errors"
	"spenzly/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(ledgerService services.LedgerServiceInterface) *AccountHandler {
	return &AccountHandler{ledgerService: ledgerService}
}

// CreateAccount creates a new ledger account for the authenticated user
// @Summary Create a new account
// @Description Create a CURRENT or SAVINGS account. The first account a user creates becomes the default.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account creation details"
// @Success 201 {object} dto.CreateAccountResponse "Account created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - Caller has no user record"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	externalUserID, err := getExternalUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUnauthenticated)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	account, err := h.ledgerService.CreateAccount(c.Request().Context(), externalUserID, services.CreateAccountInput{
		Name:      req.Name,
		Type:      req.Type,
		Balance:   req.Balance,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateAccountResponse{
		Account: dto.NewAccountResponse(account),
		Message: "Account created successfully",
	})
}

// ListAccounts lists the caller's accounts with their transaction counts
// @Summary List accounts
// @Description Newest first. Each entry carries the number of transactions recorded against it.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AccountListResponse "Accounts retrieved successfully"
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - Caller has no user record"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	externalUserID, err := getExternalUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUnauthenticated)
	}

	accounts, err := h.ledgerService.ListAccounts(c.Request().Context(), externalUserID)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountListResponse(accounts))
}

// SetDefaultAccount makes the given account the caller's default
// @Summary Set default account
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {object} dto.UpdateAccountResponse "Default account updated"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_004 - Invalid account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/default [patch]
func (h *AccountHandler) SetDefaultAccount(c echo.Context) error {
	externalUserID, err := getExternalUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUnauthenticated)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	account, err := h.ledgerService.SetDefaultAccount(c.Request().Context(), externalUserID, accountID)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UpdateAccountResponse{
		Account: dto.NewAccountResponse(account),
		Message: "Default account updated successfully",
	})
}
