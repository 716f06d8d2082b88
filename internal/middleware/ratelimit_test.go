package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/futbolpath/futbolpath/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(t *testing.T, ratePerSec float64, burst int) *gin.Engine {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := gin.New()
	r.Use(middleware.NewRateLimiter(ctx, ratePerSec, burst).Handler())
	r.GET("/api/v1/path", func(c *gin.Context) { c.Status(http.StatusOK) })

	return r
}

func get(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/path", http.NoBody)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)

	return w
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	r := newLimitedRouter(t, 10, 5)

	for i := range 5 {
		if w := get(r, "1.2.3.4:1234"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRateLimiter_BlocksExceedingBurst(t *testing.T) {
	r := newLimitedRouter(t, 1, 2)

	for i := range 3 {
		w := get(r, "1.2.3.4:1234")

		if i < 2 && w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}

		if i == 2 {
			if w.Code != http.StatusTooManyRequests {
				t.Fatalf("request %d: expected 429, got %d", i, w.Code)
			}

			if w.Header().Get("Retry-After") == "" {
				t.Error("expected Retry-After header on 429")
			}
		}
	}
}

func TestRateLimiter_IndependentClients(t *testing.T) {
	r := newLimitedRouter(t, 1, 1)

	get(r, "1.1.1.1:1000")

	if w := get(r, "1.1.1.1:1000"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request from the same IP should be limited, got %d", w.Code)
	}

	if w := get(r, "2.2.2.2:1000"); w.Code != http.StatusOK {
		t.Fatalf("different IP should not be rate limited, got %d", w.Code)
	}
}

func TestRateLimiter_TokensRefillOverTime(t *testing.T) {
	r := newLimitedRouter(t, 1000, 1)

	get(r, "5.5.5.5:1000")
	time.Sleep(20 * time.Millisecond)

	if w := get(r, "5.5.5.5:1000"); w.Code != http.StatusOK {
		t.Fatalf("expected tokens to refill, got %d", w.Code)
	}
}
