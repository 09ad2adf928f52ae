// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns:
// tracing, correlation IDs, logging with PII redaction, panic recovery,
// metrics, CORS, security headers, rate limiting, and static serving of
// stored blobs.
//
// Design goals:
//   - All dependencies injected; no process-wide store or path defaults
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - The destructive re-seed route only exists when a seed key is set
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-landing-backend/internal/config"
	"github.com/tbourn/go-landing-backend/internal/http/handlers"
	"github.com/tbourn/go-landing-backend/internal/http/middleware"
	"github.com/tbourn/go-landing-backend/internal/media"
	"github.com/tbourn/go-landing-backend/internal/services"
	"github.com/tbourn/go-landing-backend/internal/storage"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given
// Gin engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. AccessLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter (sized for multipart image uploads)
//  6. Metrics
//  7. Rate limiter (per IP; write endpoints are unauthenticated)
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction (leads carry emails/phones)
	r.Use(middleware.AccessLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Body cap; must fit an image upload plus form fields
	r.Use(limitBody(cfg.MaxUploadBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	// 8) CORS posture: allow-all when no origins configured (the public
	// site and the admin panel are static frontends on other origins)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", handlers.HeaderSeedKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", handlers.HeaderSeedKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Stored blobs, served 1:1 by filename under the public prefix
	r.Static(cfg.UploadsPrefix, cfg.UploadsDir)

	// Dependency injection: services over db, blobs, and the normalizer
	blobs := storage.New(cfg.UploadsDir, cfg.UploadsPrefix)
	contentSvc := services.NewContentService(db, blobs, media.New(blobs))
	leadSvc := &services.LeadService{DB: db}
	h := handlers.New(contentSvc, leadSvc, cfg.SeedKey)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Catalog
		api.GET("/projects", h.ListProjects)
		api.POST("/projects", h.CreateProject)
		api.POST("/projects-json", h.CreateProjectJSON)
		api.GET("/clients", h.ListClients)
		api.POST("/clients", h.CreateClient)

		// Leads (admin listings)
		api.GET("/contacts", h.ListContacts)
		api.POST("/contacts", h.CreateContact)
		api.GET("/subscriptions", h.ListSubscriptions)
		api.POST("/subscriptions", h.CreateSubscription)

		// Destructive re-seed: only mounted when a key is configured,
		// so the endpoint can never exist without its gate.
		if cfg.SeedKey != "" {
			api.POST("/seed", h.ReseedContent)
		}
	}
}

// limitBody returns a Gin middleware that caps the request body size for
// all endpoints using http.MaxBytesReader. Requests exceeding the cap cause
// downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
