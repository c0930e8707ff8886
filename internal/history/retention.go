package history

import (
	"context"
	"log"
	"time"

	"github.com/formulalab/backend/internal/config"
	"github.com/jmoiron/sqlx"
)

// StartRetentionWorker starts a background worker that prunes evaluations
// older than the configured retention window.
func StartRetentionWorker(ctx context.Context, db *sqlx.DB, cfg *config.Config) {
	if db == nil || cfg == nil {
		log.Println("[RETENTION] Database or config missing; retention worker not started")
		return
	}

	sweep := cfg.RetentionSweepMinutes
	if sweep <= 0 {
		sweep = 60
	}

	log.Printf("[RETENTION] Retention worker started (sweep every %d minutes)", sweep)
	go func() {
		ticker := time.NewTicker(time.Duration(sweep) * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[RETENTION] Retention worker stopping")
				return
			case <-ticker.C:
				days := cfg.HistoryRetentionDays
				if days <= 0 {
					continue
				}
				removed, err := PruneOlderThan(db, days)
				if err != nil {
					log.Printf("[RETENTION] Prune failed: %v", err)
					continue
				}
				if removed > 0 {
					log.Printf("[RETENTION] Pruned %d evaluations older than %d days", removed, days)
				}
			}
		}
	}()
}
