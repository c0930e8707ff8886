package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/formulalab/backend/internal/admin"
	"github.com/formulalab/backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// AdminLogin validates credentials and issues a session JWT
func AdminLogin(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		username := strings.TrimSpace(req.Username)
		password := strings.TrimSpace(req.Password)

		adminAcc, err := admin.ValidateAdminCredentials(db, username, password)
		if err != nil {
			log.Printf("[ADMIN] Login failed for username %s: %v", username, err)
			admin.LogAdminAction(db, username, c.ClientIP(), "/api/v1/admin/login", "login", map[string]interface{}{"username": username}, false)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		exp := time.Now().Add(time.Duration(cfg.AdminSessionTTLHours) * time.Hour)
		claims := jwt.MapClaims{"admin": adminAcc.Username, "exp": exp.Unix()}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			log.Printf("[ADMIN] Failed to sign token for %s: %v", username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		if _, err := db.Exec(`UPDATE admin_accounts SET last_login_at=NOW() WHERE username=$1`, adminAcc.Username); err != nil {
			log.Printf("[ADMIN] Failed to update last_login_at for %s: %v", adminAcc.Username, err)
		}

		admin.LogAdminAction(db, username, c.ClientIP(), "/api/v1/admin/login", "login", map[string]interface{}{"username": username}, true)
		c.JSON(http.StatusOK, gin.H{
			"token":      signed,
			"expires_at": exp.UTC().Format(time.RFC3339),
			"admin": gin.H{
				"username":     adminAcc.Username,
				"display_name": adminAcc.DisplayName,
				"roles":        adminAcc.Roles,
			},
		})
	}
}

// AdminLogout revokes the presented session token for the rest of its lifetime
func AdminLogout(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("admin_username")

		if token := bearerToken(c); token != "" && rdb != nil {
			key := revocationKey(token)
			ttl := time.Duration(cfg.AdminSessionTTLHours) * time.Hour
			if err := rdb.Set(context.Background(), key, "1", ttl).Err(); err != nil {
				log.Printf("[ADMIN] Failed to revoke token for %s: %v", username, err)
			}
		}

		admin.LogAdminAction(db, username, c.ClientIP(), "/api/v1/admin/logout", "logout", nil, true)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// AdminMe returns the current admin session info
func AdminMe(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("admin_username")

		adminAcc, err := admin.GetAdminAccount(db, username)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"username": username})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"username":     adminAcc.Username,
			"display_name": adminAcc.DisplayName,
			"roles":        adminAcc.Roles,
		})
	}
}

// AdminAuthMiddleware validates bearer JWTs issued by AdminLogin
func AdminAuthMiddleware(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		username, ok := claims["admin"].(string)
		if !ok || username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// Reject tokens revoked by logout
		if rdb != nil {
			if exists, err := rdb.Exists(context.Background(), revocationKey(token)).Result(); err == nil && exists > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session revoked"})
				return
			}
		}

		c.Set("admin_username", username)
		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// revocationKey is the Redis denylist key for a session token
func revocationKey(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("admin_revoked:%s", hex.EncodeToString(h[:]))
}
