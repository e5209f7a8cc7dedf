package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/pc-capacity-market/internal/utils"
)

func runProtected(t *testing.T, authHeader string, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
    if authHeader != "" {
        req.Header.Set("Authorization", authHeader)
    }
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
    for i := len(mw) - 1; i >= 0; i-- {
        h = mw[i](h)
    }
    if err := h(c); err != nil {
        t.Fatalf("middleware chain returned error: %v", err)
    }
    return rec
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
    tok, err := utils.NewAccessToken("test-secret", "Alice", "SELLER", 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    rec := runProtected(t, "Bearer "+tok.Token, JWTAuth("test-secret"))
    if rec.Code != http.StatusOK {
        t.Fatalf("expected 200 for valid token, got %d: %s", rec.Code, rec.Body.String())
    }
}

func TestJWTAuthRejectsMissingAndGarbageTokens(t *testing.T) {
    rec := runProtected(t, "", JWTAuth("test-secret"))
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("expected 401 without a token, got %d", rec.Code)
    }
    rec = runProtected(t, "Bearer not-a-jwt", JWTAuth("test-secret"))
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("expected 401 for a garbage token, got %d", rec.Code)
    }
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
    tok, err := utils.NewAccessToken("other-secret", "Alice", "SELLER", 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    rec := runProtected(t, "Bearer "+tok.Token, JWTAuth("test-secret"))
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("expected 401 for a token signed with another secret, got %d", rec.Code)
    }
}

func TestRequireRoleGatesByClaim(t *testing.T) {
    seller, _ := utils.NewAccessToken("test-secret", "Alice", "SELLER", 15)
    buyer, _ := utils.NewAccessToken("test-secret", "Bob", "BUYER", 15)

    rec := runProtected(t, "Bearer "+seller.Token, JWTAuth("test-secret"), RequireRole("SELLER"))
    if rec.Code != http.StatusOK {
        t.Fatalf("expected 200 for allowed role, got %d", rec.Code)
    }
    rec = runProtected(t, "Bearer "+buyer.Token, JWTAuth("test-secret"), RequireRole("SELLER"))
    if rec.Code != http.StatusForbidden {
        t.Fatalf("expected 403 for disallowed role, got %d", rec.Code)
    }
    rec = runProtected(t, "Bearer "+buyer.Token, JWTAuth("test-secret"), RequireRole("SELLER", "BUYER"))
    if rec.Code != http.StatusOK {
        t.Fatalf("expected 200 when role is in the allowed set, got %d", rec.Code)
    }
}
