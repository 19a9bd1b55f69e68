package handlers

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

// ExternalUserIDContextKey holds the identity provider's subject for the
// authenticated caller. The auth middleware sets it.
const ExternalUserIDContextKey = "external_user_id"

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getExternalUserIDFromContext returns ErrUnauthorized if the subject is
// missing or blank.
func getExternalUserIDFromContext(c echo.Context) (string, error) {
	externalUserID, ok := c.Get(ExternalUserIDContextKey).(string)
	if !ok || strings.TrimSpace(externalUserID) == "" {
		return "", ErrUnauthorized
	}
	return externalUserID, nil
}

// GetClientIP prefers the first X-Forwarded-For hop, then X-Real-IP.
func GetClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
