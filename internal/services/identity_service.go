package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spenzly/internal/config"
	"spenzly/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token is expired")
	ErrInvalidIssuer      = errors.New("invalid issuer")
	ErrEmptyToken         = errors.New("empty token")
	ErrMissingSubject     = errors.New("token has no subject")
	ErrInvalidAuthHeader  = errors.New("invalid authorization header format")
	ErrSigningKeyNotFound = errors.New("no signing key configured")
)

// JWTIdentityResolver verifies RS256 session tokens issued by the identity
// provider and returns the provider's user id from the subject claim.
type JWTIdentityResolver struct {
	config.IdentityConfig
}

func NewJWTIdentityResolver(identityConfig *config.IdentityConfig) *JWTIdentityResolver {
	return &JWTIdentityResolver{
		IdentityConfig: *identityConfig,
	}
}

func (r *JWTIdentityResolver) Resolve(ctx context.Context, tokenString string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	claims, err := r.parse(tokenString)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

// IssueSessionToken signs a session token for local tooling and tests. It
// fails when only the verification key is configured.
func (r *JWTIdentityResolver) IssueSessionToken(externalUserID, email string) (string, time.Time, error) {
	if r.PrivateKey == nil {
		return "", time.Time{}, ErrSigningKeyNotFound
	}
	if strings.TrimSpace(externalUserID) == "" {
		return "", time.Time{}, ErrMissingSubject
	}

	now := time.Now()
	expiresAt := now.Add(r.TokenDuration)

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    r.Issuer,
			Subject:   externalUserID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		Email:     email,
		SessionID: "sess_" + uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(r.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ExtractTokenFromHeader extracts the bearer token from an Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

func (r *JWTIdentityResolver) parse(tokenString string) (*models.SessionClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, r.keyFunc,
		jwt.WithLeeway(r.ClockSkew),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Issuer != r.Issuer {
		return nil, ErrInvalidIssuer
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

func (r *JWTIdentityResolver) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	if r.PublicKey == nil {
		return nil, errors.New("no verification key configured")
	}
	return r.PublicKey, nil
}

func mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
