package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/justdogs/training-system/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUser  = "user"
	CtxToken = "token"
)

// Auth resolves the current user from the bearer token via the identity
// provider and injects it into the request context. Requests with no live
// session are rejected with 401.
func Auth(identity ports.IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := identity.CurrentUser(c.Request().Context(), parts[1])
			if err != nil || user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(CtxUser, user)
			c.Set(CtxToken, parts[1])

			return next(c)
		}
	}
}
