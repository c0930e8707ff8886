package api

import (
	"log"

	"github.com/formulalab/backend/internal/api/handlers"
	"github.com/formulalab/backend/internal/config"
	"github.com/formulalab/backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	// No-cache headers in development so frontends never see stale responses
	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] Aggressive no-cache headers enabled for all routes")
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", handlers.HealthCheck)

		// Public constants for frontends
		v1.GET("/config", handlers.GetConfig(cfg))

		// Formula evaluation endpoints
		formulas := v1.Group("/formulas")
		formulas.Use(middleware.RateLimitMiddleware(rdb, cfg))
		{
			formulas.POST("/bernoulli", handlers.EvaluateBernoulli(db, rdb, cfg))
			formulas.POST("/brewster", handlers.EvaluateBrewster(db, rdb, cfg))
			formulas.POST("/kirchhoff", handlers.EvaluateKirchhoff(db, rdb, cfg))
			formulas.POST("/malus", handlers.EvaluateMalus(db, rdb, cfg))
		}

		// Complex arithmetic (op: add|sub|mul|div|conjugate|abs|arg|polar)
		complexOps := v1.Group("/complex")
		complexOps.Use(middleware.RateLimitMiddleware(rdb, cfg))
		{
			complexOps.POST("/:op", handlers.EvaluateComplex())
		}

		// Evaluation history
		hist := v1.Group("/history")
		{
			hist.GET("/recent", handlers.GetRecentHistory(db))
			hist.GET("/stats", handlers.GetHistoryStats(db))
		}

		// Live calculator WebSocket
		v1.GET("/calc/ws", middleware.WebSocketCORSCheck(cfg), handlers.HandleCalcWebSocket(db, rdb, cfg))

		// Admin endpoints
		adminGroup := v1.Group("/admin")
		{
			adminGroup.POST("/login", handlers.AdminLogin(db, rdb, cfg))

			authed := adminGroup.Group("")
			authed.Use(handlers.AdminAuthMiddleware(cfg, rdb))
			{
				authed.POST("/logout", handlers.AdminLogout(db, rdb, cfg))
				authed.GET("/me", handlers.AdminMe(db))
				authed.GET("/history", handlers.GetAdminHistory(db))
				authed.DELETE("/history", handlers.DeleteAdminHistory(db))
				authed.GET("/audit", handlers.GetAdminAuditLog(db))
				authed.GET("/config", handlers.GetAdminRuntimeConfig(db))
				authed.PUT("/config/:key", handlers.UpdateAdminRuntimeConfig(db, cfg))
			}
		}
	}
}
