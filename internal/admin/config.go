package admin

import (
	"fmt"
	"log"
	"strconv"

	"github.com/formulalab/backend/internal/config"
	"github.com/formulalab/backend/internal/models"
	"github.com/jmoiron/sqlx"
)

// GetAllRuntimeConfig returns all runtime config entries
func GetAllRuntimeConfig(db *sqlx.DB) ([]models.RuntimeConfig, error) {
	var configs []models.RuntimeConfig
	err := db.Select(&configs, `
		SELECT key, value, value_type, description, updated_by, updated_at
		FROM runtime_config
		ORDER BY key
	`)
	return configs, err
}

// GetRuntimeConfigValue returns a single runtime config value
func GetRuntimeConfigValue(db *sqlx.DB, key string) (*models.RuntimeConfig, error) {
	var cfg models.RuntimeConfig
	err := db.Get(&cfg, `SELECT key, value, value_type, description, updated_by, updated_at FROM runtime_config WHERE key=$1`, key)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateRuntimeConfigValue updates a single runtime config value
func UpdateRuntimeConfigValue(db *sqlx.DB, key, value, adminUsername string) error {
	// Get existing config to validate type
	existing, err := GetRuntimeConfigValue(db, key)
	if err != nil {
		return fmt.Errorf("config key not found: %s", key)
	}

	// Validate value against type
	switch existing.ValueType {
	case "int":
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("invalid integer value: %s", value)
		}
	case "float":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("invalid float value: %s", value)
		}
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid boolean value: %s (must be 'true' or 'false')", value)
		}
	}

	_, err = db.Exec(`
		UPDATE runtime_config SET value=$1, updated_by=$2, updated_at=NOW() WHERE key=$3
	`, value, adminUsername, key)
	return err
}

// ApplyRuntimeConfigToConfig loads runtime config from DB and applies overrides to the Config struct
func ApplyRuntimeConfigToConfig(db *sqlx.DB, cfg *config.Config) error {
	configs, err := GetAllRuntimeConfig(db)
	if err != nil {
		return err
	}

	for _, c := range configs {
		switch c.Key {
		case "cache_ttl_seconds":
			if v, err := strconv.Atoi(c.Value); err == nil {
				cfg.CacheTTLSeconds = v
			}
		case "rate_limit_per_minute":
			if v, err := strconv.Atoi(c.Value); err == nil {
				cfg.RateLimitPerMinute = v
			}
		case "history_enabled":
			if v, err := strconv.ParseBool(c.Value); err == nil {
				cfg.HistoryEnabled = v
			}
		case "history_retention_days":
			if v, err := strconv.Atoi(c.Value); err == nil {
				cfg.HistoryRetentionDays = v
			}
		case "retention_sweep_minutes":
			if v, err := strconv.Atoi(c.Value); err == nil {
				cfg.RetentionSweepMinutes = v
			}
		}
	}

	log.Printf("[CONFIG] Applied %d runtime config overrides from database", len(configs))
	return nil
}
