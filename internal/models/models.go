package models

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

// Evaluation represents one recorded formula evaluation
type Evaluation struct {
	ID        int            `db:"id" json:"id"`
	Formula   string         `db:"formula" json:"formula"`
	Inputs    types.JSONText `db:"inputs" json:"inputs"`
	Result    float64        `db:"result" json:"result"`
	ClientIP  sql.NullString `db:"client_ip" json:"client_ip,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// FormulaStat aggregates recorded evaluations per formula
type FormulaStat struct {
	Formula       string  `db:"formula" json:"formula"`
	Count         int     `db:"count" json:"count"`
	AverageResult float64 `db:"average_result" json:"average_result"`
	MinResult     float64 `db:"min_result" json:"min_result"`
	MaxResult     float64 `db:"max_result" json:"max_result"`
	LastUsedAt    string  `db:"last_used_at" json:"last_used_at"`
}

// AdminAccount represents an administrative user
type AdminAccount struct {
	ID           int            `db:"id" json:"id"`
	Username     string         `db:"username" json:"username"`
	DisplayName  string         `db:"display_name" json:"display_name"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Roles        pq.StringArray `db:"roles" json:"roles"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	LastLoginAt  sql.NullTime   `db:"last_login_at" json:"last_login_at,omitempty"`
}

// AdminAudit represents one logged admin action
type AdminAudit struct {
	ID            int            `db:"id" json:"id"`
	AdminUsername string         `db:"admin_username" json:"admin_username"`
	IPAddress     string         `db:"ip_address" json:"ip_address"`
	Route         string         `db:"route" json:"route"`
	Action        string         `db:"action" json:"action"`
	Details       types.JSONText `db:"details" json:"details,omitempty"`
	Success       bool           `db:"success" json:"success"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// RuntimeConfig represents a tunable configuration value stored in the database
type RuntimeConfig struct {
	Key         string    `db:"key" json:"key"`
	Value       string    `db:"value" json:"value"`
	ValueType   string    `db:"value_type" json:"value_type"`
	Description string    `db:"description" json:"description"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	UpdatedBy   string    `db:"updated_by" json:"updated_by"`
}
