package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/marina-berth-reservation/internal/utils"
)

const testSecret = "test-secret"

// serve runs a request through JWTAuth in front of a handler that echoes
// the username stored in context.
func serve(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		name, _ := c.Get("username").(string)
		return c.String(http.StatusOK, name)
	}, JWTAuth(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec := serve(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthEmptyBearer(t *testing.T) {
	rec := serve(t, "Bearer ")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec := serve(t, "Bearer not-a-token")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "alice", -1)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec := serve(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("another-secret", "alice", 60)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec := serve(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "alice", 60)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	rec := serve(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "alice" {
		t.Errorf("context username = %q, want %q", rec.Body.String(), "alice")
	}
}
