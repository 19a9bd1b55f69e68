package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims carried by identity provider session tokens.
// The subject is the provider's user id.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	SessionID string `json:"sid,omitempty"`
}
