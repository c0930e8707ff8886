package admin

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/formulalab/backend/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// GetAdminAccount retrieves an admin account by username
func GetAdminAccount(db *sqlx.DB, username string) (*models.AdminAccount, error) {
	var admin models.AdminAccount
	err := db.Get(&admin, `SELECT id, username, display_name, password_hash, roles, is_active, created_at, last_login_at FROM admin_accounts WHERE username=$1`, username)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// VerifyAdminPassword checks if the provided password matches the stored hash
func VerifyAdminPassword(hashedPassword, plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	return err == nil
}

// CreateAdminAccount creates a new admin account (used for seeding/testing)
func CreateAdminAccount(db *sqlx.DB, username, displayName, plainPassword string, roles []string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admin_accounts (username, display_name, password_hash, roles, is_active, created_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW())
		ON CONFLICT (username) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			password_hash = EXCLUDED.password_hash,
			roles = EXCLUDED.roles,
			is_active = TRUE
	`, username, displayName, string(hashedPassword), pq.Array(roles))

	return err
}

// LogAdminAction records an admin action in the audit log
func LogAdminAction(db *sqlx.DB, adminUsername, ip, route, action string, details map[string]interface{}, success bool) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		log.Printf("Failed to marshal admin audit details: %v", err)
		detailsJSON = []byte("{}")
	}

	_, err = db.Exec(`
		INSERT INTO admin_audit (admin_username, ip_address, route, action, details, success, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, adminUsername, ip, route, action, detailsJSON, success)

	if err != nil {
		log.Printf("Failed to log admin action: %v", err)
	}

	return err
}

// GetAdminAuditLogs retrieves recent admin audit logs with pagination
func GetAdminAuditLogs(db *sqlx.DB, limit, offset int) ([]models.AdminAudit, error) {
	var logs []models.AdminAudit
	query := `
		SELECT id, admin_username, ip_address, route, action, details, success, created_at
		FROM admin_audit
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	err := db.Select(&logs, query, limit, offset)
	return logs, err
}

// GetAdminAuditLogsByUsername retrieves audit logs for a specific admin
func GetAdminAuditLogsByUsername(db *sqlx.DB, username string, limit, offset int) ([]models.AdminAudit, error) {
	var logs []models.AdminAudit
	query := `
		SELECT id, admin_username, ip_address, route, action, details, success, created_at
		FROM admin_audit
		WHERE admin_username = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := db.Select(&logs, query, username, limit, offset)
	return logs, err
}

// ValidateAdminCredentials validates a username + password combination
func ValidateAdminCredentials(db *sqlx.DB, username, password string) (*models.AdminAccount, error) {
	log.Printf("[ADMIN] Validating username: %s", username)

	admin, err := GetAdminAccount(db, username)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("[ADMIN] No admin account found for username: %s", username)
			return nil, fmt.Errorf("admin account not found")
		}
		log.Printf("[ADMIN] Database error: %v", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !admin.IsActive {
		log.Printf("[ADMIN] Account disabled: %s", username)
		return nil, fmt.Errorf("admin account disabled")
	}

	if !VerifyAdminPassword(admin.PasswordHash, password) {
		log.Printf("[ADMIN] Password verification failed for username: %s", username)
		return nil, fmt.Errorf("invalid credentials")
	}

	log.Printf("[ADMIN] Credentials verified for: %s", username)
	return admin, nil
}
