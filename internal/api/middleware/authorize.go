package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/authware/rbac-service/internal/api/metrics"
	"github.com/authware/rbac-service/internal/core/service"
)

// Authorize gates a route on the authorization service. With no permitted
// roles any valid token passes; otherwise the decoded role must be a member
// of the permitted set. On allow the user identity is injected into context
// under "user_id" and "role".
func Authorize(gate *service.Authorizer, permitted ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))

			d := gate.Authorize(token, permitted)
			if !d.Allowed {
				metrics.AuthzDecisionsTotal.WithLabelValues(d.Reason).Inc()
				if d.Reason == service.DenyForbidden {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			metrics.AuthzDecisionsTotal.WithLabelValues("allow").Inc()
			c.Set("user_id", d.UserID)
			c.Set("role", d.Role)

			return next(c)
		}
	}
}

// bearerToken extracts the token from an Authorization header. Returns ""
// when the header is absent or not a bearer scheme; the gate treats an empty
// token as unauthenticated.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
