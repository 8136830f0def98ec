package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/justdogs/training-system/internal/core/domain"
	"github.com/justdogs/training-system/internal/core/ports"
)

// stubIdentity resolves one fixed token to one fixed user.
type stubIdentity struct {
	token string
	user  *domain.User
}

func (s *stubIdentity) SignIn(context.Context, string, string) (*ports.AuthSession, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubIdentity) SignUp(context.Context, ports.SignUpInput) (*ports.AuthSession, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubIdentity) SignOut(context.Context, string) error { return nil }

func (s *stubIdentity) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	if token != s.token {
		return nil, domain.ErrSessionNotFound
	}
	return s.user, nil
}

func (s *stubIdentity) UpdateProfile(context.Context, string, ports.ProfileUpdate) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubIdentity) ResetPassword(context.Context, string) error { return nil }

func (s *stubIdentity) UpdatePassword(context.Context, string, string) error { return nil }

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	identity := &stubIdentity{
		token: "live-token",
		user:  &domain.User{ID: "u1", Email: "alice@justdogs.co.za", Role: domain.RoleAdmin},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(identity)(func(c echo.Context) error {
		called = true
		user, _ := c.Get(CtxUser).(*domain.User)
		if user == nil || user.ID != "u1" {
			t.Fatalf("user not set: %+v", user)
		}
		if c.Get(CtxToken) != "live-token" {
			t.Fatalf("token not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubIdentity{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubIdentity{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_DeadSession(t *testing.T) {
	e := echo.New()
	identity := &stubIdentity{token: "live-token", user: &domain.User{ID: "u1"}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer revoked-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(identity)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingProfile(t *testing.T) {
	e := echo.New()
	// A valid session whose profile row no longer exists resolves to nil.
	identity := &stubIdentity{token: "live-token", user: nil}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(identity)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
