package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/formulalab/backend/internal/config"
	"github.com/formulalab/backend/internal/history"
	"github.com/formulalab/backend/internal/physics"
	cache "github.com/formulalab/backend/internal/redis"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// EvaluateBernoulli computes total pressure along a streamline
func EvaluateBernoulli(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Pressure *float64 `json:"pressure" binding:"required"`
			Density  *float64 `json:"density" binding:"required"`
			Velocity *float64 `json:"velocity" binding:"required"`
			Height   *float64 `json:"height" binding:"required"`
			Gravity  *float64 `json:"gravity"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pressure, density, velocity and height are required"})
			return
		}

		gravity := orDefault(req.Gravity, physics.StandardGravity)
		if !allFinite(*req.Pressure, *req.Density, *req.Velocity, *req.Height, gravity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inputs must be finite numbers"})
			return
		}

		inputs := map[string]interface{}{
			"pressure": *req.Pressure,
			"density":  *req.Density,
			"velocity": *req.Velocity,
			"height":   *req.Height,
			"gravity":  gravity,
		}

		key := ""
		if rdb != nil && cfg.CacheTTLSeconds > 0 {
			b, _ := json.Marshal(inputs)
			key = cache.EvalKey("bernoulli", b)
			if result, ok := cache.CachedResult(c.Request.Context(), rdb, key); ok {
				c.JSON(http.StatusOK, gin.H{"formula": "bernoulli", "total_pressure": result, "cached": true})
				return
			}
		}

		result := physics.TotalPressureAt(*req.Pressure, *req.Density, *req.Velocity, *req.Height, gravity)
		if !allFinite(result) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "result is not finite"})
			return
		}

		if key != "" {
			cache.CacheResult(c.Request.Context(), rdb, key, result, time.Duration(cfg.CacheTTLSeconds)*time.Second)
		}
		go history.Record(db, rdb, cfg, "bernoulli", inputs, result, c.ClientIP())

		c.JSON(http.StatusOK, gin.H{"formula": "bernoulli", "total_pressure": result, "cached": false})
	}
}

// EvaluateBrewster computes the polarization angle for a refraction boundary
func EvaluateBrewster(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			N1 *float64 `json:"n1" binding:"required"`
			N2 *float64 `json:"n2" binding:"required"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n1 and n2 are required"})
			return
		}
		if !allFinite(*req.N1, *req.N2) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inputs must be finite numbers"})
			return
		}
		// The core propagates IEEE semantics; the API rejects the degenerate index
		if *req.N1 == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "n1 must be non-zero"})
			return
		}

		inputs := map[string]interface{}{"n1": *req.N1, "n2": *req.N2}

		key := ""
		if rdb != nil && cfg.CacheTTLSeconds > 0 {
			b, _ := json.Marshal(inputs)
			key = cache.EvalKey("brewster", b)
			if result, ok := cache.CachedResult(c.Request.Context(), rdb, key); ok {
				c.JSON(http.StatusOK, gin.H{"formula": "brewster", "angle_degrees": result, "cached": true})
				return
			}
		}

		result := physics.BrewsterAngle(*req.N1, *req.N2)
		if key != "" {
			cache.CacheResult(c.Request.Context(), rdb, key, result, time.Duration(cfg.CacheTTLSeconds)*time.Second)
		}
		go history.Record(db, rdb, cfg, "brewster", inputs, result, c.ClientIP())

		c.JSON(http.StatusOK, gin.H{"formula": "brewster", "angle_degrees": result, "cached": false})
	}
}

// EvaluateKirchhoff checks a voltage loop against Kirchhoff's voltage law
func EvaluateKirchhoff(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Voltages []float64 `json:"voltages" binding:"required"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "voltages is required"})
			return
		}
		if !allFinite(req.Voltages...) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inputs must be finite numbers"})
			return
		}

		sum := physics.VoltageLoopSum(req.Voltages)
		satisfied := physics.VoltageLoopSatisfied(req.Voltages)

		go history.Record(db, rdb, cfg, "kirchhoff", map[string]interface{}{"voltages": req.Voltages}, sum, c.ClientIP())

		c.JSON(http.StatusOK, gin.H{"formula": "kirchhoff", "satisfied": satisfied, "sum": sum})
	}
}

// EvaluateMalus computes the intensity transmitted through a polarizer
func EvaluateMalus(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			InitialIntensity *float64 `json:"initial_intensity" binding:"required"`
			AngleDegrees     *float64 `json:"angle_degrees" binding:"required"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "initial_intensity and angle_degrees are required"})
			return
		}
		if !allFinite(*req.InitialIntensity, *req.AngleDegrees) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inputs must be finite numbers"})
			return
		}

		inputs := map[string]interface{}{
			"initial_intensity": *req.InitialIntensity,
			"angle_degrees":     *req.AngleDegrees,
		}

		key := ""
		if rdb != nil && cfg.CacheTTLSeconds > 0 {
			b, _ := json.Marshal(inputs)
			key = cache.EvalKey("malus", b)
			if result, ok := cache.CachedResult(c.Request.Context(), rdb, key); ok {
				c.JSON(http.StatusOK, gin.H{"formula": "malus", "transmitted_intensity": result, "cached": true})
				return
			}
		}

		result := physics.TransmittedIntensity(*req.InitialIntensity, *req.AngleDegrees)
		if key != "" {
			cache.CacheResult(c.Request.Context(), rdb, key, result, time.Duration(cfg.CacheTTLSeconds)*time.Second)
		}
		go history.Record(db, rdb, cfg, "malus", inputs, result, c.ClientIP())

		c.JSON(http.StatusOK, gin.H{"formula": "malus", "transmitted_intensity": result, "cached": false})
	}
}
