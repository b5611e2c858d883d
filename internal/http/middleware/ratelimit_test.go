package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(0, 2, KeyByUserOrIP()) // rps 0: only the burst is spendable
	r := newLimitedRouter(rl)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d; want 200", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d; want 429 after the burst", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("Retry-After = %q; want 1", got)
	}
}

func TestRateLimiter_BurstCoercedToOne(t *testing.T) {
	rl := NewRateLimiter(0, 0, KeyByUserOrIP())
	r := newLimitedRouter(rl)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("first request blocked with coerced burst: %d", w.Code)
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(0, 1, KeyByUserOrIP())
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Simulate upstream auth setting a user identity from a header.
	r.Use(func(c *gin.Context) {
		if u := c.GetHeader("X-User-ID"); u != "" {
			c.Set("userID", u)
		}
	})
	r.Use(rl.Handler())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if user != "" {
			req.Header.Set("X-User-ID", user)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if send("alice") != http.StatusOK {
		t.Fatalf("alice's first request blocked")
	}
	if send("alice") != http.StatusTooManyRequests {
		t.Fatalf("alice's second request allowed; want 429")
	}
	// A different user has their own bucket.
	if send("bob") != http.StatusOK {
		t.Fatalf("bob blocked by alice's bucket")
	}
}

func TestKeyByUserOrIP_Prefixes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	keyFn := KeyByUserOrIP()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("userID", "u1")
	if got := keyFn(c); got != "user:u1" {
		t.Fatalf("key = %q; want user:u1", got)
	}

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if got := keyFn(c2); got == "" || got[:3] != "ip:" {
		t.Fatalf("key = %q; want ip: prefix", got)
	}
}
