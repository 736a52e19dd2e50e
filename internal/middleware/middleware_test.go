package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/reservation-api/internal/config"
	"github.com/BruksfildServices01/reservation-api/internal/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.POST("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)
	return rw
}

func TestCORSEchoesOrigin(t *testing.T) {
	r := newEngine(CORSMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://example.com")
	rw := do(r, req)
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	if got := rw.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Fatalf("unexpected allow origin %q", got)
	}
	if got := rw.Header().Get("Vary"); got != "Origin" {
		t.Fatalf("unexpected Vary %q", got)
	}
}

func TestCORSFallsBackToDevOrigin(t *testing.T) {
	r := newEngine(CORSMiddleware())
	rw := do(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if got := rw.Header().Get("Access-Control-Allow-Origin"); got != DevOrigin {
		t.Fatalf("expected %s, got %q", DevOrigin, got)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine(CORSMiddleware())
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rw := do(r, req)
	if rw.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rw.Code)
	}
	if got := rw.Header().Get("Access-Control-Allow-Methods"); got != "GET,POST,OPTIONS" {
		t.Fatalf("unexpected methods %q", got)
	}
	if got := rw.Header().Get("Access-Control-Max-Age"); got != "86400" {
		t.Fatalf("unexpected max age %q", got)
	}
}

func TestAdminKeyPlain(t *testing.T) {
	r := newEngine(AdminKeyMiddleware(&config.Config{AdminKey: "s3cret"}))

	cases := []struct {
		name   string
		setup  func(*http.Request)
		target string
		want   int
	}{
		{"no key", func(*http.Request) {}, "/ping", http.StatusUnauthorized},
		{"wrong header", func(r *http.Request) { r.Header.Set(AdminKeyHeader, "nope") }, "/ping", http.StatusUnauthorized},
		{"header", func(r *http.Request) { r.Header.Set(AdminKeyHeader, "s3cret") }, "/ping", http.StatusOK},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer s3cret") }, "/ping", http.StatusOK},
		{"query", func(*http.Request) {}, "/ping?key=s3cret", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		tc.setup(req)
		if rw := do(r, req); rw.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, rw.Code)
		}
	}
}

func TestAdminKeyBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	r := newEngine(AdminKeyMiddleware(&config.Config{AdminKeyBcrypt: string(hash)}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(AdminKeyHeader, "hashed-key")
	if rw := do(r, req); rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(AdminKeyHeader, "other")
	if rw := do(r, req); rw.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rw.Code)
	}
}

func TestAdminKeyUnconfiguredRejectsAll(t *testing.T) {
	r := newEngine(AdminKeyMiddleware(&config.Config{}))
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(AdminKeyHeader, "anything")
	if rw := do(r, req); rw.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rw.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestIDMiddleware())

	rw := do(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if len(rw.Header().Get(RequestIDHeader)) != 36 {
		t.Fatalf("expected generated uuid, got %q", rw.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	rw = do(r, req)
	if got := rw.Header().Get(RequestIDHeader); got != "caller-id" {
		t.Fatalf("expected caller id to be kept, got %q", got)
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimitMiddleware(8))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("0123456789"))
	if rw := do(r, req); rw.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rw.Code)
	}
}

func TestMemoryRateLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewMemoryRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if ok, _ := rl.Allow(ctx, "1.2.3.4"); !ok {
			t.Fatalf("request %d should pass", i)
		}
	}
	if ok, _ := rl.Allow(ctx, "1.2.3.4"); ok {
		t.Fatal("third request should be limited")
	}
	if ok, _ := rl.Allow(ctx, "5.6.7.8"); !ok {
		t.Fatal("other client should pass")
	}

	now = now.Add(61 * time.Second)
	if ok, _ := rl.Allow(ctx, "1.2.3.4"); !ok {
		t.Fatal("request in new window should pass")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(RateLimitMiddleware(NewMemoryRateLimiter(1, time.Minute), logging.Discard()))

	if rw := do(r, httptest.NewRequest(http.MethodPost, "/ping", nil)); rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	rw := do(r, httptest.NewRequest(http.MethodPost, "/ping", nil))
	if rw.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rw.Code)
	}
	if !strings.Contains(rw.Body.String(), `"rate_limited"`) {
		t.Fatalf("unexpected body %s", rw.Body.String())
	}
}

func TestRedisRateLimiterFailsOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	rl := NewRedisRateLimiter(rdb, 1, time.Minute, "")
	if _, err := rl.Allow(context.Background(), "k"); err == nil {
		t.Fatal("expected an error without a reachable redis")
	}

	r := newEngine(RateLimitMiddleware(rl, logging.Discard()))
	if rw := do(r, httptest.NewRequest(http.MethodPost, "/ping", nil)); rw.Code != http.StatusOK {
		t.Fatalf("expected fail-open 200, got %d", rw.Code)
	}
}
