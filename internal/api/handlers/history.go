package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/formulalab/backend/internal/history"
	"github.com/formulalab/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// GetRecentHistory returns the most recent recorded evaluations
func GetRecentHistory(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
		if limit < 1 {
			limit = 25
		}
		if limit > 200 {
			limit = 200
		}

		evals, err := history.Recent(db, limit)
		if err != nil {
			log.Printf("[HISTORY] Failed to fetch recent evaluations: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
			return
		}
		if evals == nil {
			evals = []models.Evaluation{}
		}

		c.JSON(http.StatusOK, gin.H{"evaluations": evals, "count": len(evals)})
	}
}

// GetHistoryStats returns per-formula evaluation aggregates
func GetHistoryStats(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := history.Stats(db)
		if err != nil {
			log.Printf("[HISTORY] Failed to fetch stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if stats == nil {
			stats = []models.FormulaStat{}
		}

		c.JSON(http.StatusOK, gin.H{"stats": stats})
	}
}
