package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Migrate replays every pending *.up.sql in dir, ordered by filename.
// Applied versions are tracked in schema_migrations so a restart only
// runs what is new; the whole history is replayable from an empty database.
func Migrate(ctx context.Context, db PgxIface, dir string, log *zap.Logger) error {
	createTable := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    text PRIMARY KEY,
			applied_at timestamp NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := make(map[string]bool)
	rows, err := db.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate migration versions: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, path := range files {
		version := migrationVersion(path, ".up.sql")
		if applied[version] {
			continue
		}

		payload, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", path, err)
		}

		if _, err := db.Exec(ctx, string(payload)); err != nil {
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := db.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", version, err)
		}

		log.Info("Migration applied", zap.String("version", version))
	}

	return nil
}

// Rollback reverts the most recently applied migration using its *.down.sql.
func Rollback(ctx context.Context, db PgxIface, dir string, log *zap.Logger) error {
	var version string
	err := db.QueryRow(ctx, `SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version)
	if err != nil {
		return fmt.Errorf("find last migration: %w", err)
	}

	path := filepath.Join(dir, version+".down.sql")
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", path, err)
	}

	if _, err := db.Exec(ctx, string(payload)); err != nil {
		return fmt.Errorf("revert migration %s: %w", version, err)
	}
	if _, err := db.Exec(ctx, `DELETE FROM schema_migrations WHERE version = $1`, version); err != nil {
		return fmt.Errorf("forget migration %s: %w", version, err)
	}

	log.Info("Migration reverted", zap.String("version", version))
	return nil
}

func migrationVersion(path, suffix string) string {
	return strings.TrimSuffix(filepath.Base(path), suffix)
}
