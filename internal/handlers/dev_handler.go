package handlers

import (
	stderrors "errors"
	"net/http"

	"spenzly/internal/dto"
	"spenzly/internal/errors"
	"spenzly/internal/models"
	"spenzly/internal/repositories"
	"spenzly/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints. The router registers it
// only outside production and only when a signing key is configured.
type DevHandler struct {
	userRepo repositories.UserRepositoryInterface
	issuer   services.SessionIssuerInterface
}

func NewDevHandler(userRepo repositories.UserRepositoryInterface, issuer services.SessionIssuerInterface) *DevHandler {
	return &DevHandler{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// CreateSession provisions the user row an identity provider sign-up would
// create, then returns a bearer token for it.
//
// Method: POST /dev/session
// Authentication: None
// Environment: Development only
func (h *DevHandler) CreateSession(c echo.Context) error {
	var req dto.DevSessionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	ctx := c.Request().Context()
	created := true

	user := &models.User{
		ClerkUserID: req.ExternalUserID,
		Email:       req.Email,
		Name:        req.Name,
	}
	if err := h.userRepo.Create(ctx, user); err != nil {
		if !stderrors.Is(err, repositories.ErrUserAlreadyExists) {
			return SendSystemError(c, err)
		}
		existing, err := h.userRepo.GetByClerkUserID(ctx, req.ExternalUserID)
		if err != nil {
			// The email belongs to a different subject.
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("email is already registered"))
		}
		user = existing
		created = false
	}

	token, expiresAt, err := h.issuer.IssueSessionToken(user.ClerkUserID, user.Email)
	if err != nil {
		return SendSystemError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return c.JSON(status, dto.DevSessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		UserID:    user.ID.String(),
		Created:   created,
	})
}
