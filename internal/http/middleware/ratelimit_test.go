package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rl := NewRateLimiter(rps, burst, KeyByIP())
	r.Use(rl.Handler())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	r := newLimitedRouter(100, 5)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	r := newLimitedRouter(0, 2) // no refill; only the burst is available

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes = append(codes, last.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests failed: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request: status = %d, want 429", codes[2])
	}
	if last.Header().Get("Retry-After") != "1" {
		t.Fatalf("Retry-After = %q, want 1", last.Header().Get("Retry-After"))
	}
	if !strings.Contains(last.Body.String(), "too_many_requests") {
		t.Fatalf("unexpected body: %s", last.Body.String())
	}
}

func TestRateLimiter_BurstCoercedToOne(t *testing.T) {
	rl := NewRateLimiter(1, 0, KeyByIP())
	if rl.burst != 1 {
		t.Fatalf("burst = %d, want 1", rl.burst)
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(0, 1, nil)

	a := rl.getVisitor("ip:10.0.0.1")
	b := rl.getVisitor("ip:10.0.0.2")
	if a == b {
		t.Fatal("expected distinct limiters per key")
	}

	if !a.Allow() {
		t.Fatal("first token for key a should be available")
	}
	if a.Allow() {
		t.Fatal("key a should be exhausted")
	}
	if !b.Allow() {
		t.Fatal("key b must not share key a's bucket")
	}
}

func TestRateLimiter_VisitorReused(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)

	first := rl.getVisitor("k")
	second := rl.getVisitor("k")
	if first != second {
		t.Fatal("same key should return the same limiter")
	}
}
