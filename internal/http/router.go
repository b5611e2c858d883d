// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/aliconnects/go-shop-assistant/internal/catalog"
	"github.com/aliconnects/go-shop-assistant/internal/config"
	"github.com/aliconnects/go-shop-assistant/internal/groq"
	"github.com/aliconnects/go-shop-assistant/internal/http/handlers"
	"github.com/aliconnects/go-shop-assistant/internal/http/middleware"
	"github.com/aliconnects/go-shop-assistant/internal/services"
)

// soundNotifier emits message sound cues as structured log events, gated on
// the persisted sound-enabled setting of the calling user. The identity is
// read from the turn context (handlers attach it via services.WithCaller);
// cues are cosmetic and lookup failures default to enabled inside the
// settings service.
type soundNotifier struct {
	settings *services.SettingsService
}

// defaultNotifierUser scopes cues when no identity reached the context.
const defaultNotifierUser = "demo-user"

// Notify implements services.Notifier.
func (n soundNotifier) Notify(ctx context.Context, event string) {
	if n.settings == nil {
		return
	}
	user := services.CallerFrom(ctx)
	if user == "" {
		user = defaultNotifierUser
	}
	if !n.settings.SoundEnabled(ctx, user) {
		return
	}
	log.Debug().Str("cue", event).Str("user_id", user).Msg("message sound cue")
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Structured request logging
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured request logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress responses; product listings embed long descriptions
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
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

	// Dependency injection: services ← catalog/gateway/db
	info := catalog.DefaultStoreInfo()
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, catalog.WithTimeout(cfg.Catalog.Timeout))

	productSvc := services.NewProductService(catalogClient)
	productSvc.TTL = cfg.Catalog.CacheTTL

	var gateway services.Completer
	if cfg.Groq.APIKey != "" {
		var opts []groq.Option
		if cfg.Groq.BaseURL != "" {
			opts = append(opts, groq.WithBaseURL(cfg.Groq.BaseURL))
		}
		if cfg.Groq.Model != "" {
			opts = append(opts, groq.WithModel(cfg.Groq.Model))
		}
		opts = append(opts, groq.WithHTTPClient(&http.Client{Timeout: cfg.Groq.Timeout}))
		gateway = groq.NewClient(cfg.Groq.APIKey, opts...)
	}

	settingsSvc := &services.SettingsService{DB: db}

	chatSvc := services.NewChatService(productSvc, services.NewClassifier(info), gateway, info)
	chatSvc.ThinkingDelay = cfg.ThinkingDelay
	chatSvc.MaxPromptRunes = 1000
	chatSvc.Notifier = soundNotifier{settings: settingsSvc}

	h := handlers.New(chatSvc, productSvc, settingsSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Sessions
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id/messages", h.ListMessages)
		api.POST("/sessions/:id/messages", h.PostMessage)
		api.POST("/sessions/:id/images", h.PostImage)

		// Products
		api.GET("/products", h.ListProducts)
		api.GET("/products/featured", h.ListFeatured)
		api.GET("/product-categories", h.ListCategories)

		// Settings
		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.UpdateSettings)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
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
