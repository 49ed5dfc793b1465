package postgres

import (
	"context"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		name       TEXT        PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// RunMigrations применяет еще не примененные *.up.sql миграции в алфавитном порядке.
// Каждая миграция выполняется в своей транзакции под advisory-блокировкой,
// поэтому несколько экземпляров сервиса могут стартовать одновременно.
func RunMigrations(ctx context.Context, db DBTX, logger *zap.Logger) error {
	names, err := listMigrations()
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for _, name := range names {
		content, err := migrationsFS.ReadFile(path.Join("migrations", name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		applied := false
		err = inTx(ctx, db, func(tx pgx.Tx) error {
			if err := lockScope(ctx, tx, "migrations", "schema"); err != nil {
				return err
			}

			var done bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&done); err != nil {
				return fmt.Errorf("failed to check migration %s: %w", name, err)
			}
			if done {
				return nil
			}

			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return fmt.Errorf("failed to run migration %s: %w", name, err)
			}
			if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", name, err)
			}
			applied = true
			return nil
		})
		if err != nil {
			return err
		}

		if applied {
			logger.Info("migration applied", zap.String("name", name))
		} else {
			logger.Debug("migration already applied", zap.String("name", name))
		}
	}

	return nil
}

// listMigrations возвращает имена up-миграций по порядку
func listMigrations() ([]string, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
