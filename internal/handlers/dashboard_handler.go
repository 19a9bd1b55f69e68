package handlers

import (
	"net/http"

	"spenzly/internal/dto"
	"spenzly/internal/errors"
	"spenzly/internal/services"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	ledgerService services.LedgerServiceInterface
}

func NewDashboardHandler(ledgerService services.LedgerServiceInterface) *DashboardHandler {
	return &DashboardHandler{ledgerService: ledgerService}
}

// GetDashboard returns accounts, transactions and income/expense totals in one payload
// @Summary Dashboard summary
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Dashboard retrieved successfully"
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - Caller has no user record"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	externalUserID, err := getExternalUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUnauthenticated)
	}

	dashboard, err := h.ledgerService.GetDashboard(c.Request().Context(), externalUserID)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDashboardResponse(dashboard))
}
