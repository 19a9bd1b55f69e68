package dto

import "time"

// DevSessionRequest provisions a local user and mints a session token for it.
type DevSessionRequest struct {
	ExternalUserID string `json:"externalUserId" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email"`
	Name           string `json:"name" validate:"max=255"`
}

type DevSessionResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userId"`
	Created   bool      `json:"created"`
}
