package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"inventory-api/internal/model"
	"inventory-api/pkg/password"
)

//go:embed migrations/001_initial.up.sql
var initialMigrationSQL string

var requiredTables = []string{
	"roles",
	"users",
	"warehouses",
	"warehouse_items",
}

func (db *DB) EnsureSchema(ctx context.Context) error {
	if db == nil || db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	exists, err := db.hasAllRequiredTables(ctx)
	if err != nil {
		return fmt.Errorf("check existing tables: %w", err)
	}

	if !exists {
		slog.Info("database schema missing tables; applying initial migration")
		if _, err := db.Pool.Exec(ctx, initialMigrationSQL); err != nil {
			return fmt.Errorf("apply initial migration: %w", err)
		}

		exists, err = db.hasAllRequiredTables(ctx)
		if err != nil {
			return fmt.Errorf("re-check tables after migration: %w", err)
		}

		if !exists {
			return fmt.Errorf("schema initialization incomplete: required tables are still missing")
		}
	}

	slog.Info("database schema ensured")
	return nil
}

// Seed inserts the fixed role set and the initial active admin account.
// Idempotent: existing rows are left untouched.
func (db *DB) Seed(ctx context.Context, hasher *password.Hasher) error {
	roles := []model.Role{
		{ID: model.RoleAdminID, Name: model.RoleAdminName},
		{ID: model.RoleManagementID, Name: model.RoleManagementName},
		{ID: model.RoleAuditorID, Name: model.RoleAuditorName},
	}

	for _, role := range roles {
		_, err := db.Pool.Exec(ctx,
			`INSERT INTO roles (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			role.ID, role.Name)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}

	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO users (email, full_name, password_hash, active, role_id)
		 VALUES ($1, $2, $3, TRUE, $4)
		 ON CONFLICT (email) DO NOTHING`,
		"admin@happywarehouse.com", "Admin User", hasher.Hash("P@ssw0rd"), model.RoleAdminID)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if tag.RowsAffected() > 0 {
		slog.Info("seeded initial admin user", "email", "admin@happywarehouse.com")
	}

	return nil
}

func (db *DB) hasAllRequiredTables(ctx context.Context) (bool, error) {
	var count int
	err := db.Pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name = ANY($1)
	`, requiredTables).Scan(&count)
	if err != nil {
		return false, err
	}

	return count == len(requiredTables), nil
}
