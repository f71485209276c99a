package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"msa-backend/internal/accounts"
	"msa-backend/internal/agreements"
	"msa-backend/internal/services/health"
	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/config"
	"msa-backend/internal/shared/metrics"
	"msa-backend/internal/shared/server/middleware"
	"msa-backend/internal/shared/server/respond"
)

// RouterDeps holds handlers and shared services for route registration.
type RouterDeps struct {
	Config           config.Config
	Sessions         *sessions.Manager
	Health           *health.Service
	AccountHandler   *accounts.Handler
	AgreementHandler *agreements.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		report := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	api.GET("/metrics", metrics.Handler())

	sessioned := api.Group("")
	sessioned.Use(deps.Sessions.Middleware())

	loginLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": middleware.PerMinute(deps.Config.LoginRatePerMinute),
		},
	})
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterPublicRoutes(sessioned, loginLimiter)
	}

	authed := sessioned.Group("")
	authed.Use(middleware.RequireUser())
	registerMeRoutes(authed)
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterRoutes(authed)
	}
	if deps.AgreementHandler != nil {
		deps.AgreementHandler.RegisterRoutes(authed)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
