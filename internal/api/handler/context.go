package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/justdogs/training-system/internal/api/middleware"
	"github.com/justdogs/training-system/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Auth middleware and
// fast-fails before any service call: a missing user means the middleware did
// not run on this route.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.CtxUser).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// ctxToken extracts the raw bearer token for operations that act on the
// session itself (sign-out, password update).
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get(middleware.CtxToken).(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return token, nil
}
