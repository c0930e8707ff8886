package history

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/formulalab/backend/internal/config"
	"github.com/formulalab/backend/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Record stores one formula evaluation and publishes it on the eval_events
// channel. Recording is best-effort: a missing database, disabled history, or
// a failed insert never affects the evaluation that triggered it.
func Record(db *sqlx.DB, rdb *redis.Client, cfg *config.Config, formula string, inputs map[string]interface{}, result float64, clientIP string) {
	if db == nil || cfg == nil || !cfg.HistoryEnabled {
		return
	}

	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		log.Printf("[HISTORY] Failed to marshal inputs for %s: %v", formula, err)
		return
	}

	_, err = db.Exec(`
		INSERT INTO evaluations (formula, inputs, result, client_ip, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NOW())
	`, formula, inputsJSON, result, clientIP)
	if err != nil {
		log.Printf("[HISTORY] Failed to record %s evaluation: %v", formula, err)
		return
	}

	if rdb != nil {
		payload := map[string]interface{}{
			"type":       "evaluation",
			"formula":    formula,
			"inputs":     inputs,
			"result":     result,
			"created_at": time.Now().UTC().Format(time.RFC3339),
		}
		b, _ := json.Marshal(payload)
		if err := rdb.Publish(context.Background(), "eval_events", b).Err(); err != nil {
			log.Printf("[HISTORY] Failed to publish eval event: %v", err)
		}
	}
}

// Recent returns the most recent evaluations, newest first.
func Recent(db *sqlx.DB, limit int) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := db.Select(&evals, `
		SELECT id, formula, inputs, result, client_ip, created_at
		FROM evaluations
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	return evals, err
}

// Stats aggregates the recorded evaluations per formula.
func Stats(db *sqlx.DB) ([]models.FormulaStat, error) {
	var stats []models.FormulaStat
	err := db.Select(&stats, `
		SELECT formula,
			COUNT(*) AS count,
			AVG(result) AS average_result,
			MIN(result) AS min_result,
			MAX(result) AS max_result,
			to_char(MAX(created_at), 'YYYY-MM-DD"T"HH24:MI:SS"Z"') AS last_used_at
		FROM evaluations
		GROUP BY formula
		ORDER BY count DESC, formula
	`)
	return stats, err
}

// PruneOlderThan deletes evaluations older than the given number of days and
// returns how many rows were removed.
func PruneOlderThan(db *sqlx.DB, days int) (int64, error) {
	res, err := db.Exec(`
		DELETE FROM evaluations
		WHERE created_at < NOW() - ($1 * INTERVAL '1 day')
	`, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// PruneAll deletes the entire evaluation history.
func PruneAll(db *sqlx.DB) (int64, error) {
	res, err := db.Exec(`DELETE FROM evaluations`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
