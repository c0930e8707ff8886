package ws

import (
	"context"
	"encoding/json"
	"log"

	"github.com/formulalab/backend/internal/config"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

var dbClient *sqlx.DB
var rdbClient *redis.Client
var wsConfig *config.Config

// SetDependencies wires the storage handles used for history recording
// and the evaluation feed.
func SetDependencies(db *sqlx.DB, r *redis.Client, cfg *config.Config) {
	dbClient = db
	rdbClient = r
	wsConfig = cfg
}

// StartEvalFeedSubscriber subscribes to the eval_events channel and forwards
// evaluation events to every connected calculator session.
func StartEvalFeedSubscriber(ctx context.Context) {
	if rdbClient == nil {
		log.Println("[WS] Redis client not set; eval feed subscriber not started")
		return
	}

	pubsub := rdbClient.Subscribe(ctx, "eval_events")
	ch := pubsub.Channel()
	go func() {
		log.Println("[WS] eval_events subscriber started")
		for msg := range ch {
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				log.Printf("[WS] invalid event payload: %v", err)
				continue
			}

			typeStr, _ := payload["type"].(string)
			switch typeStr {
			case "evaluation":
				CalcHub.Broadcast(payload)
			default:
				log.Printf("[WS] unknown event type: %s", typeStr)
			}
		}
	}()
}
