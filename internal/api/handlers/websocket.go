package handlers

import (
	"github.com/formulalab/backend/internal/config"
	"github.com/formulalab/backend/internal/ws"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// HandleCalcWebSocket handles live calculator sessions
func HandleCalcWebSocket(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return ws.HandleWebSocket
}
