package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func securityRouter(opt SecurityOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders(opt))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	r := securityRouter(SecurityOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	h := w.Header()
	if h.Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("nosniff missing: %q", h.Get("X-Content-Type-Options"))
	}
	if h.Get("X-Frame-Options") != "DENY" {
		t.Fatalf("frame options = %q", h.Get("X-Frame-Options"))
	}
	if h.Get("Referrer-Policy") != "no-referrer" {
		t.Fatalf("referrer policy = %q", h.Get("Referrer-Policy"))
	}
}

func TestSecurityHeaders_NoHSTSOnPlainHTTP(t *testing.T) {
	r := securityRouter(SecurityOptions{EnableHSTS: true, HSTSMaxAge: time.Hour})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Fatal("HSTS must not be emitted for plain HTTP")
	}
}

func TestSecurityHeaders_HSTSBehindProxy(t *testing.T) {
	r := securityRouter(SecurityOptions{EnableHSTS: true, HSTSMaxAge: time.Hour})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	got := w.Header().Get("Strict-Transport-Security")
	if !strings.HasPrefix(got, "max-age=3600") {
		t.Fatalf("HSTS = %q, want max-age=3600 prefix", got)
	}
}

func TestSecurityHeaders_PolicyOptIn(t *testing.T) {
	r := securityRouter(SecurityOptions{EnablePolicy: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Header().Get("Permissions-Policy") == "" {
		t.Fatal("Permissions-Policy missing with EnablePolicy")
	}

	r = securityRouter(SecurityOptions{})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get("Permissions-Policy") != "" {
		t.Fatal("Permissions-Policy emitted without opt-in")
	}
}

func TestSecurityHeaders_NoStore(t *testing.T) {
	r := securityRouter(SecurityOptions{NoStore: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("Cache-Control = %q", w.Header().Get("Cache-Control"))
	}
}

func TestSecurityHeaders_ExposesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), SecurityHeaders(SecurityOptions{}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if !strings.Contains(w.Header().Get("Access-Control-Expose-Headers"), "X-Request-ID") {
		t.Fatalf("expose headers = %q", w.Header().Get("Access-Control-Expose-Headers"))
	}
}
