package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/formulalab/backend/internal/admin"
	"github.com/formulalab/backend/internal/history"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
)

// GetAdminHistory returns paginated evaluations with filters
func GetAdminHistory(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminUsername := c.GetString("admin_username")

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		formula := c.DefaultQuery("formula", "all")
		dateFrom := c.DefaultQuery("date_from", "")
		dateTo := c.DefaultQuery("date_to", "")

		if limit > 200 {
			limit = 200
		}

		type evalRow struct {
			ID         int            `db:"id" json:"id"`
			Formula    string         `db:"formula" json:"formula"`
			Inputs     types.JSONText `db:"inputs" json:"inputs"`
			Result     float64        `db:"result" json:"result"`
			ClientIP   *string        `db:"client_ip" json:"client_ip"`
			CreatedAt  string         `db:"created_at" json:"created_at"`
			TotalCount int            `db:"total_count" json:"-"`
		}

		// Date filters are appended only when present so the casts never
		// see an empty string
		dateFilter := ""
		args := []interface{}{formula}
		argIdx := 2

		if dateFrom != "" {
			dateFilter += " AND created_at >= $" + strconv.Itoa(argIdx) + "::date"
			args = append(args, dateFrom)
			argIdx++
		}
		if dateTo != "" {
			dateFilter += " AND created_at < ($" + strconv.Itoa(argIdx) + "::date + interval '1 day')"
			args = append(args, dateTo)
			argIdx++
		}

		query := `
			SELECT id, formula, inputs, result, client_ip,
				to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"') as created_at,
				COUNT(*) OVER() as total_count
			FROM evaluations
			WHERE ($1 = 'all' OR formula = $1)` + dateFilter + `
			ORDER BY created_at DESC
			LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1) + `
		`
		args = append(args, limit, offset)

		var rows []evalRow
		err := db.Select(&rows, query, args...)
		if err != nil {
			log.Printf("[ADMIN] Failed to fetch evaluations: %v", err)
			admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/admin/history", "get_history", nil, false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
			return
		}

		total := 0
		if len(rows) > 0 {
			total = rows[0].TotalCount
		}

		admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/admin/history", "get_history", map[string]interface{}{"count": len(rows), "formula": formula}, true)
		c.JSON(http.StatusOK, gin.H{"evaluations": rows, "total": total, "limit": limit, "offset": offset})
	}
}

// DeleteAdminHistory prunes evaluations, either all of them or only those
// older than the older_than_days cutoff
func DeleteAdminHistory(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminUsername := c.GetString("admin_username")
		olderThan := c.Query("older_than_days")

		var removed int64
		var err error
		if olderThan == "" {
			removed, err = history.PruneAll(db)
		} else {
			days, convErr := strconv.Atoi(olderThan)
			if convErr != nil || days < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "older_than_days must be a non-negative integer"})
				return
			}
			removed, err = history.PruneOlderThan(db, days)
		}
		if err != nil {
			log.Printf("[ADMIN] Failed to prune history: %v", err)
			admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/admin/history", "delete_history", map[string]interface{}{"older_than_days": olderThan}, false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prune history"})
			return
		}

		admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/admin/history", "delete_history", map[string]interface{}{"older_than_days": olderThan, "removed": removed}, true)
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	}
}
