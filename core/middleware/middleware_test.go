package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"myevent-api/core/cache"
	"myevent-api/core/constants"
	"myevent-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func setup(t *testing.T) (*echo.Echo, *utils.TokenManager, *cache.MemoryCache) {
	t.Helper()
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	store := cache.NewMemoryCache(nil)
	mw := NewMiddleware(tokens, store)

	e := echo.New()
	whoami := func(c echo.Context) error {
		return c.String(http.StatusOK, GetUserID(c).String())
	}
	e.GET("/private", whoami, mw.AuthMiddleware())
	e.GET("/optional", whoami, mw.OptionalAuth())
	e.GET("/admin", whoami, mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))
	return e, tokens, store
}

func do(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	e, tokens, store := setup(t)
	id := uuid.New()
	token, _ := tokens.GenerateToken(id, nil, constants.RoleUser, nil)

	if rec := do(e, "/private", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d", rec.Code)
	}
	if rec := do(e, "/private", "garbage"); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d", rec.Code)
	}

	rec := do(e, "/private", token)
	if rec.Code != http.StatusOK || rec.Body.String() != id.String() {
		t.Fatalf("valid token: status = %d body = %s", rec.Code, rec.Body.String())
	}

	_ = store.AddToTokenBlacklist(context.Background(), token, time.Hour)
	if rec := do(e, "/private", token); rec.Code != http.StatusUnauthorized {
		t.Errorf("revoked token: status = %d", rec.Code)
	}
}

func TestAuthMiddlewareCookie(t *testing.T) {
	e, tokens, _ := setup(t)
	token, _ := tokens.GenerateToken(uuid.New(), nil, constants.RoleUser, nil)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("cookie token: status = %d", rec.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	e, tokens, _ := setup(t)
	id := uuid.New()
	token, _ := tokens.GenerateToken(id, nil, constants.RoleUser, nil)

	if rec := do(e, "/optional", ""); rec.Code != http.StatusOK || rec.Body.String() != uuid.Nil.String() {
		t.Errorf("anonymous: status = %d body = %s", rec.Code, rec.Body.String())
	}
	if rec := do(e, "/optional", "garbage"); rec.Code != http.StatusOK || rec.Body.String() != uuid.Nil.String() {
		t.Errorf("invalid token should be treated as anonymous: %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(e, "/optional", token); rec.Body.String() != id.String() {
		t.Errorf("authenticated: body = %s", rec.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	e, tokens, _ := setup(t)
	user, _ := tokens.GenerateToken(uuid.New(), nil, constants.RoleUser, nil)
	admin, _ := tokens.GenerateToken(uuid.New(), nil, constants.RoleAdmin, nil)

	if rec := do(e, "/admin", user); rec.Code != http.StatusForbidden {
		t.Errorf("user on admin route: status = %d", rec.Code)
	}
	if rec := do(e, "/admin", admin); rec.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d", rec.Code)
	}
}
