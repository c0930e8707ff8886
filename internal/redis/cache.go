package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// EvalKey builds the cache key for a formula evaluation from the formula
// name and the serialized request inputs.
func EvalKey(formula string, inputs []byte) string {
	sum := sha256.Sum256(inputs)
	return "eval:" + formula + ":" + hex.EncodeToString(sum[:])
}

// CachedResult looks up a previously computed result.
// A nil client or any Redis error reads as a cache miss.
func CachedResult(ctx context.Context, client *redis.Client, key string) (float64, bool) {
	if client == nil {
		return 0, false
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, false
	}
	if err != nil {
		log.Printf("[CACHE] Lookup failed for %s: %v", key, err)
		return 0, false
	}

	result, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Printf("[CACHE] Corrupt value at %s: %v", key, err)
		return 0, false
	}

	return result, true
}

// CacheResult stores a computed result under key for the given TTL.
// Failures are logged and otherwise ignored.
func CacheResult(ctx context.Context, client *redis.Client, key string, result float64, ttl time.Duration) {
	if client == nil || ttl <= 0 {
		return
	}

	val := strconv.FormatFloat(result, 'g', -1, 64)
	if err := client.Set(ctx, key, val, ttl).Err(); err != nil {
		log.Printf("[CACHE] Store failed for %s: %v", key, err)
	}
}
