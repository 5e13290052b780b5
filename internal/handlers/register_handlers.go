package handlers

import (
	"net/http"

	"github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
	"github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet_backend/internal/middleware"
	"github.com/SscSPs/fx_wallet_backend/internal/platform/config"
	"github.com/SscSPs/fx_wallet_backend/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up the API routes. lim throttles the public rate
// endpoints and may be nil.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *services.ServiceContainer, events gateways.EventSource, lim *limiter.Limiter) {
	RegisterValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	public := r.Group("")
	if lim != nil {
		public.Use(middleware.RateLimit(lim))
	}
	RegisterExchangeRateRoutes(public, services.ExchangeRate)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		RegisterWatchlistRoutes(v1, services.Watchlist)
		RegisterWalletRoutes(v1, services.Wallet)
		RegisterFriendRoutes(v1, services.Friend, services.Profile)
		RegisterRealtimeRoutes(v1, events, cfg.CORSOrigins)
	}
}
