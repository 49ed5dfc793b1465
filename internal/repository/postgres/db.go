package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX - общий интерфейс pgxpool.Pool и pgxmock
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// rowScanner объединяет pgx.Row и pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// inTx выполняет fn в транзакции. При ошибке fn транзакция откатывается.
func inTx(ctx context.Context, db DBTX, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}
	return nil
}

// lockScope берет транзакционную advisory-блокировку на пространство ключей системы.
// Блокировка снимается при Commit или Rollback.
func lockScope(ctx context.Context, tx pgx.Tx, namespace, system string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, namespace+":"+system); err != nil {
		return fmt.Errorf("repository: failed to acquire %s lock for system %q: %w", namespace, system, err)
	}
	return nil
}
