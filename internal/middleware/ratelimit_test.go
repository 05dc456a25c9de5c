package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/marina-berth-reservation/internal/config"
)

func rateCtx(e *echo.Echo, username string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	req.RemoteAddr = "203.0.113.7:50412"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/reservations")
	if username != "" {
		c.Set("username", username)
	}
	return c
}

func TestBuildRateKeyUserStrategy(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}
	e := echo.New()

	// Behind JWTAuth the authenticated username keys the bucket, so two
	// users behind one NAT address get independent budgets.
	alice := buildRateKey(cfg, rateCtx(e, "alice"))
	bob := buildRateKey(cfg, rateCtx(e, "bob"))
	if alice == bob {
		t.Fatalf("users share a bucket: %q", alice)
	}
	if !strings.Contains(alice, "alice") {
		t.Errorf("key %q does not carry the username", alice)
	}

	// On public routes no identity exists and the shared anon bucket applies.
	if anon := buildRateKey(cfg, rateCtx(e, "")); !strings.Contains(anon, "anon") {
		t.Errorf("unauthenticated key %q missing anon fallback", anon)
	}
}

func TestBuildRateKeyStrategies(t *testing.T) {
	e := echo.New()
	cases := []struct {
		strategy string
		want     []string
	}{
		{"ip", []string{"203.0.113.7"}},
		{"user", []string{"alice"}},
		{"user_route", []string{"alice", "GET /reservations"}},
		{"ip_user_route", []string{"203.0.113.7", "alice", "GET /reservations"}},
		{"ip_route", []string{"203.0.113.7", "GET /reservations"}},
		{"bogus", []string{"203.0.113.7", "GET /reservations"}},
	}
	for _, tc := range cases {
		cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: tc.strategy}
		key := buildRateKey(cfg, rateCtx(e, "alice"))
		if !strings.HasPrefix(key, "rl:") {
			t.Errorf("strategy %q: key %q missing prefix", tc.strategy, key)
		}
		for _, part := range tc.want {
			if !strings.Contains(key, part) {
				t.Errorf("strategy %q: key %q missing %q", tc.strategy, key, part)
			}
		}
	}
}
