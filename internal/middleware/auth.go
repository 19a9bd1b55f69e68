package middleware

import (
	"errors"
	"log/slog"

	apperrors "spenzly/internal/errors"
	"spenzly/internal/handlers"
	"spenzly/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	authEventMissingToken  = "missing_token"
	authEventInvalidFormat = "invalid_format"
	authEventExpiredToken  = "expired_token"
	authEventInvalidToken  = "invalid_token"
	authEventAuthenticated = "authenticated"
)

// RequireAuth resolves the bearer token to the identity provider's subject
// and stores it under handlers.ExternalUserIDContextKey. Handlers never see
// the raw token.
func RequireAuth(resolver services.IdentityResolverInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	record := func(event string) {
		metrics.IncrementCounter(services.MetricAuthenticationEvent, map[string]string{"event_type": event})
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				record(authEventMissingToken)
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			token, err := services.ExtractTokenFromHeader(authHeader)
			if err != nil {
				record(authEventInvalidFormat)
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			externalUserID, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				slog.DebugContext(c.Request().Context(), "token rejected",
					"trace_id", GetTraceID(c),
					"error", err,
				)
				if errors.Is(err, services.ErrExpiredToken) {
					record(authEventExpiredToken)
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				record(authEventInvalidToken)
				return handlers.SendError(c, apperrors.AuthInvalidToken)
			}

			record(authEventAuthenticated)
			c.Set(handlers.ExternalUserIDContextKey, externalUserID)

			return next(c)
		}
	}
}
