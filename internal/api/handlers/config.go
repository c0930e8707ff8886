package handlers

import (
	"net/http"

	"github.com/formulalab/backend/internal/config"
	"github.com/formulalab/backend/internal/physics"
	"github.com/gin-gonic/gin"
)

// GetConfig returns minimal config values required by frontend
func GetConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"standard_gravity":  physics.StandardGravity,
			"voltage_tolerance": physics.VoltageTolerance,
			"history_enabled":   cfg.HistoryEnabled,
		})
	}
}
