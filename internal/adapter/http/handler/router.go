package handler

import (
	"ppocha-economy/internal/adapter/http/middleware"
	redisStore "ppocha-economy/internal/adapter/storage/redis"
	"ppocha-economy/internal/core/ports"
	"ppocha-economy/pkg/apperror"
	"ppocha-economy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	EconomySvc     ports.EconomyService
	LeaderboardSvc ports.LeaderboardService
	AuditSvc       ports.AuditService         // nil = audit logging disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AllowOrigin    string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(deps.AllowOrigin))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrRouteNotFound())
	})

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

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

	playerHandler := NewPlayerHandler(deps.EconomySvc)
	shopHandler := NewShopHandler(deps.EconomySvc)
	rewardHandler := NewRewardHandler(deps.EconomySvc)
	rankingHandler := NewRankingHandler(deps.LeaderboardSvc)

	api := r.Group("/api")
	{
		api.GET("/player/state", playerHandler.State)
		api.POST("/economy/offline/claim", rl("claims"), playerHandler.ClaimOffline)
		api.POST("/game/session/finish", rl("session"), playerHandler.FinishSession)

		api.GET("/shop/catalog", shopHandler.Catalog)
		api.POST("/shop/purchase/verify", rl("purchase"), shopHandler.VerifyPurchase)

		api.GET("/missions/daily", rewardHandler.DailyMissions)
		api.POST("/missions/claim", rl("claims"), rewardHandler.ClaimMission)
		api.POST("/pass/claim", rl("claims"), rewardHandler.ClaimPass)

		api.GET("/rankings", rankingHandler.Rankings)
		api.POST("/rankings/submit", rl("rankings_submit"), rankingHandler.SubmitScore)
	}

	return r
}
