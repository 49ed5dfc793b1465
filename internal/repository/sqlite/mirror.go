// Package sqlite содержит локальное зеркало данных основного хранилища.
//
// Зеркало хранит последний известный снимок покупок и журнала баланса
// каждой системы. Из него читают, пока основное хранилище недоступно.
// Записи сериализуются в JSON, отдельные столбцы нужны только для фильтрации
// и сортировки.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// Формат времени с фиксированной длиной, чтобы строки сортировались как время
const sortableTime = "2006-01-02T15:04:05.000000000Z"

// schemaVersion хранится в PRAGMA user_version. Зеркало - это кэш,
// поэтому при смене схемы таблицы пересоздаются и заполняются следующим снимком.
const schemaVersion = 2

// Mirror - локальная копия покупок и журнала баланса на SQLite
type Mirror struct {
	db *sql.DB
}

// New открывает зеркало по пути dsn. ":memory:" создает зеркало в памяти.
func New(dsn string) (*Mirror, error) {
	inMemory := dsn == ":memory:" || strings.Contains(dsn, "mode=memory")

	source := dsn
	if !inMemory {
		source = dsn + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, fmt.Errorf("mirror: failed to open database: %w", err)
	}

	// Каждое соединение к :memory: получает собственную базу
	if inMemory {
		db.SetMaxOpenConns(1)
	}

	m := &Mirror{db: db}
	if err := m.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("mirror: failed to migrate database: %w", err)
	}

	return m, nil
}

// Close закрывает соединение с базой
func (m *Mirror) Close() error {
	return m.db.Close()
}

func (m *Mirror) migrate() error {
	var version int
	if err := m.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return err
	}
	if version != schemaVersion {
		drop := `
		DROP TABLE IF EXISTS purchases;
		DROP TABLE IF EXISTS ledger_entries;
		DROP TABLE IF EXISTS snapshots;
		`
		if _, err := m.db.Exec(drop); err != nil {
			return err
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS purchases (
		system TEXT NOT NULL,
		id TEXT NOT NULL,
		application_number INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		payload TEXT NOT NULL,
		PRIMARY KEY (system, id)
	);

	CREATE INDEX IF NOT EXISTS idx_purchases_system_created
		ON purchases(system, created_at);

	CREATE TABLE IF NOT EXISTS ledger_entries (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		system TEXT NOT NULL,
		id TEXT NOT NULL UNIQUE,
		primary_seq INTEGER NOT NULL,
		balance TEXT NOT NULL,
		payload TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_ledger_entries_system_order
		ON ledger_entries(system, primary_seq, seq);

	CREATE TABLE IF NOT EXISTS snapshots (
		system TEXT PRIMARY KEY,
		refreshed_at TEXT NOT NULL
	);
	`
	if _, err := m.db.Exec(schema); err != nil {
		return err
	}
	_, err := m.db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion))
	return err
}

// ReplaceSnapshot заменяет данные системы свежим снимком основного хранилища.
// entries передаются новыми первыми, как их возвращает LedgerStore.ListEntries.
func (m *Mirror) ReplaceSnapshot(ctx context.Context, system string, purchases []*domain.Purchase, entries []*domain.LedgerEntry) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mirror: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM purchases WHERE system = ?`, system); err != nil {
		return fmt.Errorf("mirror: failed to clear purchases: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger_entries WHERE system = ?`, system); err != nil {
		return fmt.Errorf("mirror: failed to clear ledger entries: %w", err)
	}

	for _, p := range purchases {
		if err := upsertPurchase(ctx, tx, system, p); err != nil {
			return err
		}
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if err := insertEntry(ctx, tx, system, entries[i]); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (system, refreshed_at) VALUES (?, ?)
		 ON CONFLICT(system) DO UPDATE SET refreshed_at = excluded.refreshed_at`,
		system, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("mirror: failed to record snapshot time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("mirror: failed to commit snapshot: %w", err)
	}
	return nil
}

// RefreshedAt возвращает время последнего снимка системы
func (m *Mirror) RefreshedAt(ctx context.Context, system string) (time.Time, bool, error) {
	var raw string
	err := m.db.QueryRowContext(ctx, `SELECT refreshed_at FROM snapshots WHERE system = ?`, system).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("mirror: failed to read snapshot time: %w", err)
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("mirror: invalid snapshot time %q: %w", raw, err)
	}
	return at, true, nil
}

// PutPurchase сохраняет или заменяет покупку
func (m *Mirror) PutPurchase(ctx context.Context, p *domain.Purchase) error {
	return upsertPurchase(ctx, m.db, p.System, p)
}

// DeletePurchase удаляет покупку из зеркала
func (m *Mirror) DeletePurchase(ctx context.Context, system, id string) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM purchases WHERE system = ? AND id = ?`, system, id); err != nil {
		return fmt.Errorf("mirror: failed to delete purchase %q: %w", id, err)
	}
	return nil
}

// GetPurchase возвращает покупку из зеркала
func (m *Mirror) GetPurchase(ctx context.Context, system, id string) (*domain.Purchase, error) {
	var payload string
	err := m.db.QueryRowContext(ctx,
		`SELECT payload FROM purchases WHERE system = ? AND id = ?`,
		system, id,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPurchaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mirror: failed to get purchase %q: %w", id, err)
	}

	return decodePurchase(system, payload)
}

// ListPurchases возвращает покупки системы, новые первыми
func (m *Mirror) ListPurchases(ctx context.Context, system string) ([]*domain.Purchase, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT payload FROM purchases
		 WHERE system = ?
		 ORDER BY created_at DESC, application_number DESC`,
		system,
	)
	if err != nil {
		return nil, fmt.Errorf("mirror: failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*domain.Purchase
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("mirror: failed to scan purchase: %w", err)
		}
		p, err := decodePurchase(system, payload)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}

	return purchases, rows.Err()
}

// PutEntry добавляет запись журнала. Место записи в истории определяет ее Seq,
// а не порядок вызовов: параллельные записи могут прийти в зеркало вперемешку.
func (m *Mirror) PutEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	return insertEntry(ctx, m.db, entry.System, entry)
}

// CurrentBalance возвращает баланс последней записи зеркала или ноль
func (m *Mirror) CurrentBalance(ctx context.Context, system string) (decimal.Decimal, error) {
	var raw string
	err := m.db.QueryRowContext(ctx,
		`SELECT balance FROM ledger_entries WHERE system = ? ORDER BY primary_seq DESC, seq DESC LIMIT 1`,
		system,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("mirror: failed to read balance: %w", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("mirror: invalid balance %q: %w", raw, err)
	}
	return balance, nil
}

// ListEntries возвращает записи журнала, новые первыми
func (m *Mirror) ListEntries(ctx context.Context, system string) ([]*domain.LedgerEntry, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT payload FROM ledger_entries WHERE system = ? ORDER BY primary_seq DESC, seq DESC`,
		system,
	)
	if err != nil {
		return nil, fmt.Errorf("mirror: failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("mirror: failed to scan ledger entry: %w", err)
		}
		e := &domain.LedgerEntry{}
		if err := json.Unmarshal([]byte(payload), e); err != nil {
			return nil, fmt.Errorf("mirror: failed to decode ledger entry: %w", err)
		}
		e.System = system
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertPurchase(ctx context.Context, db execer, system string, p *domain.Purchase) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("mirror: failed to encode purchase %q: %w", p.ID, err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO purchases (system, id, application_number, created_at, payload)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(system, id) DO UPDATE SET
		     application_number = excluded.application_number,
		     created_at = excluded.created_at,
		     payload = excluded.payload`,
		system, p.ID, p.ApplicationNumber, p.CreatedAt.UTC().Format(sortableTime), string(payload),
	)
	if err != nil {
		return fmt.Errorf("mirror: failed to store purchase %q: %w", p.ID, err)
	}
	return nil
}

func insertEntry(ctx context.Context, db execer, system string, e *domain.LedgerEntry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("mirror: failed to encode ledger entry %q: %w", e.ID, err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO ledger_entries (system, id, primary_seq, balance, payload) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		system, e.ID, e.Seq, e.Balance.String(), string(payload),
	)
	if err != nil {
		return fmt.Errorf("mirror: failed to store ledger entry %q: %w", e.ID, err)
	}
	return nil
}

func decodePurchase(system, payload string) (*domain.Purchase, error) {
	p := &domain.Purchase{}
	if err := json.Unmarshal([]byte(payload), p); err != nil {
		return nil, fmt.Errorf("mirror: failed to decode purchase: %w", err)
	}
	p.System = system
	return p, nil
}
