package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Fatalf("X-Request-ID = %q, want client-supplied-id", got)
	}
}

func TestRedact_Email(t *testing.T) {
	in := "contact=jane.doe+test@example.com&x=1"
	out := redact(in)
	if strings.Contains(out, "jane.doe") || strings.Contains(out, "example.com") {
		t.Fatalf("email leaked: %q", out)
	}
	if !strings.Contains(out, "[REDACTED:email]") {
		t.Fatalf("missing redaction marker: %q", out)
	}
}

func TestRedact_Phone(t *testing.T) {
	out := redact("mobile=+1 212 555 0199")
	if strings.Contains(out, "0199") {
		t.Fatalf("phone leaked: %q", out)
	}
}

func TestRedact_UUIDBeforePhone(t *testing.T) {
	// UUID digit runs must not be half-eaten by the phone pattern.
	out := redact("id=6f1c2b34-95ab-4cde-89ab-0123456789ab")
	if !strings.Contains(out, "[REDACTED:id]") {
		t.Fatalf("uuid not redacted as id: %q", out)
	}
}

func TestRedact_EmptyString(t *testing.T) {
	if got := redact(""); got != "" {
		t.Fatalf("redact(\"\") = %q", got)
	}
}

func TestRecovery_PanicBecomesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"code":"internal_error"`) {
		t.Fatalf("unexpected body: %s", body)
	}
	if strings.Contains(body, "kaboom") {
		t.Fatal("panic value must not leak into the response")
	}
}

func TestLoggerFrom_FallbackNeverNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if LoggerFrom(c) == nil {
		t.Fatal("LoggerFrom returned nil without AccessLogger installed")
	}
}

func TestAccessLogger_SetsRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), AccessLogger(RedactOptions{}))
	var hadLogger bool
	r.GET("/x", func(c *gin.Context) {
		_, hadLogger = c.Get("logger")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if !hadLogger {
		t.Fatal("request-scoped logger was not attached")
	}
}
