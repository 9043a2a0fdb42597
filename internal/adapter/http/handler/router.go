package handler

import (
	"time"

	"health-record-vault/internal/adapter/http/middleware"
	redisStore "health-record-vault/internal/adapter/storage/redis"
	"health-record-vault/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	defaultMaxBodyBytes = 1 << 20
	defaultNonceTTL     = 5 * time.Minute
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RecordSvc      ports.RecordService
	AccessSvc      ports.AccessControlService
	PurchaseSvc    ports.PurchaseService
	EmergencySvc   ports.EmergencyService
	StatsSvc       ports.StatsService
	TokenSvc       ports.TokenService
	NonceStore     ports.NonceStore
	NonceTTL       time.Duration
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Gatherer       prometheus.Gatherer // nil = /metrics disabled
	MaxBodyBytes   int64
	Mode           string // gin mode; empty keeps the current mode
	IssueTokens    bool   // expose POST /api/v1/auth/token (development only)
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = defaultMaxBodyBytes
	}
	if deps.NonceTTL <= 0 {
		deps.NonceTTL = defaultNonceTTL
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	// Health check (deep, pings every dependency concurrently)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.DefaultRateLimitRules()
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	if deps.IssueTokens {
		authHandler := NewAuthHandler(deps.TokenSvc)
		v1.POST("/auth/token", rl("token"), authHandler.IssueToken)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	authed := v1.Group("", jwtAuth)
	if deps.NonceStore != nil {
		authed.Use(middleware.RequestNonce(deps.NonceStore, deps.NonceTTL, deps.Logger))
	}

	recordHandler := NewRecordHandler(deps.RecordSvc)
	accessHandler := NewAccessHandler(deps.AccessSvc)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseSvc)
	emergencyHandler := NewEmergencyHandler(deps.EmergencySvc)
	statsHandler := NewStatsHandler(deps.StatsSvc)

	records := authed.Group("/records")
	{
		records.POST("", rl("records_write"), recordHandler.Upload)
		records.GET("/:id", rl("records_read"), recordHandler.Read)
		records.POST("/:id/verify", rl("records_write"), recordHandler.Verify)
		records.GET("/:id/audit", rl("audit"), recordHandler.AccessLog)

		records.POST("/:id/grants", rl("grants"), accessHandler.Grant)
		records.DELETE("/:id/grants/:grantee", rl("grants"), accessHandler.Revoke)
		records.PUT("/:id/grants/:grantee/consent", rl("grants"), accessHandler.UpdateConsent)

		records.POST("/:id/purchase", rl("purchases"), purchaseHandler.Purchase)
		records.POST("/:id/emergency", rl("emergency"), emergencyHandler.RequestAccess)
	}

	me := authed.Group("/me")
	{
		me.GET("/stats", rl("stats"), statsHandler.GetMyStats)
	}

	return r
}
