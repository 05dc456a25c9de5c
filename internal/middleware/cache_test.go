package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/marina-berth-reservation/internal/config"
)

// cacheCtx builds an echo context for a GET against the given concrete
// URL, registered under the parameterized detail route.
func cacheCtx(e *echo.Echo, url, param string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/catways/:catwayNumber")
	c.SetParamNames("catwayNumber")
	c.SetParamValues(param)
	return c
}

func TestCacheKeyDistinctPerRecord(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	e := echo.New()

	// Two records sharing one route pattern must never share a key.
	k1 := cacheKeyFrom(cfg, cacheCtx(e, "/catways/1", "1"))
	k2 := cacheKeyFrom(cfg, cacheCtx(e, "/catways/2", "2"))
	if k1 == k2 {
		t.Fatalf("key collision across records: %q", k1)
	}

	// The same URL must keep producing the same key.
	if again := cacheKeyFrom(cfg, cacheCtx(e, "/catways/1", "1")); again != k1 {
		t.Errorf("unstable key for /catways/1: %q then %q", k1, again)
	}
}

func TestCacheKeyDistinctPerRecordAllStrategies(t *testing.T) {
	e := echo.New()
	for _, strategy := range []string{"route", "method_route", "route_query"} {
		cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: strategy}
		k1 := cacheKeyFrom(cfg, cacheCtx(e, "/catways/1", "1"))
		k2 := cacheKeyFrom(cfg, cacheCtx(e, "/catways/2", "2"))
		if k1 == k2 {
			t.Errorf("strategy %q: key collision across records: %q", strategy, k1)
		}
	}
}

func TestBustsCache(t *testing.T) {
	cases := []struct {
		method string
		status int
		want   bool
	}{
		{http.MethodPost, http.StatusCreated, true},
		{http.MethodPut, http.StatusOK, true},
		{http.MethodDelete, http.StatusOK, true},
		{http.MethodPatch, http.StatusOK, true},
		{http.MethodGet, http.StatusOK, false},
		{http.MethodPost, http.StatusBadRequest, false},
		{http.MethodPut, http.StatusNotFound, false},
		{http.MethodDelete, http.StatusInternalServerError, false},
	}
	for _, tc := range cases {
		if got := bustsCache(tc.method, tc.status); got != tc.want {
			t.Errorf("bustsCache(%s, %d) = %v, want %v", tc.method, tc.status, got, tc.want)
		}
	}
}

func TestCachePayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	body := []byte(`[{"catwayNumber":1}]`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(payload)
	if !ok {
		t.Fatal("decodePayload: not ok")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("header = %v", gotHdr)
	}
	if !bytes.Equal(gotBody, body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestCachePayloadEmptyBody(t *testing.T) {
	payload, err := encodePayload(http.StatusOK, http.Header{}, nil)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	if _, _, body, ok := decodePayload(payload); !ok || len(body) != 0 {
		t.Errorf("decodePayload: ok=%v body=%q", ok, body)
	}
}

func TestDecodePayloadRejectsShortInput(t *testing.T) {
	for _, bs := range [][]byte{nil, {1, 2, 3}} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("decodePayload(%v) accepted truncated input", bs)
		}
	}
}
