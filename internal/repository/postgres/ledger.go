package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const ledgerLockNamespace = "ledger"

// LedgerRepository реализует журнал баланса поверх PostgreSQL.
// Порядок записей задается столбцом seq, текущий баланс берется из последней записи.
type LedgerRepository struct {
	db  DBTX
	now func() time.Time
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db, now: time.Now}
}

// CurrentBalance возвращает баланс последней записи или ноль для пустого журнала
func (r *LedgerRepository) CurrentBalance(ctx context.Context, system string) (decimal.Decimal, error) {
	balance, err := latestBalance(ctx, r.db, system)
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to get balance for system %q: %w", system, err)
	}
	return balance, nil
}

// ListEntries возвращает записи журнала, новые первыми
func (r *LedgerRepository) ListEntries(ctx context.Context, system string) ([]*domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT seq, id, system, entry_date::text, amount, balance, kind, purchase_id, created_at
		 FROM ledger_entries
		 WHERE system = $1
		 ORDER BY seq DESC`,
		system,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query ledger entries for system %q: %w", system, err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		e := &domain.LedgerEntry{}
		if err := rows.Scan(&e.Seq, &e.ID, &e.System, &e.Date, &e.Amount, &e.Balance, &e.Kind, &e.PurchaseID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating ledger entries: %w", err)
	}

	return entries, nil
}

// AppendEntry добавляет запись без проверки остатка
func (r *LedgerRepository) AppendEntry(ctx context.Context, system string, draft domain.EntryDraft) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockScope(ctx, tx, ledgerLockNamespace, system); err != nil {
			return err
		}

		balance, err := latestBalance(ctx, tx, system)
		if err != nil {
			return fmt.Errorf("repository: failed to read balance for system %q: %w", system, err)
		}

		entry, err = r.insert(ctx, tx, system, balance, draft)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Deduct списывает draft.Amount, если баланса достаточно.
// Проверка и запись выполняются под одной блокировкой системы.
func (r *LedgerRepository) Deduct(ctx context.Context, system string, draft domain.EntryDraft) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockScope(ctx, tx, ledgerLockNamespace, system); err != nil {
			return err
		}

		available, err := latestBalance(ctx, tx, system)
		if err != nil {
			return fmt.Errorf("repository: failed to read balance for system %q: %w", system, err)
		}

		if available.LessThan(draft.Amount) {
			return domain.NewInsufficientBalanceError(draft.Amount, available)
		}

		draft.Amount = draft.Amount.Neg()
		entry, err = r.insert(ctx, tx, system, available, draft)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *LedgerRepository) insert(ctx context.Context, tx pgx.Tx, system string, previous decimal.Decimal, draft domain.EntryDraft) (*domain.LedgerEntry, error) {
	now := r.now()
	entry := &domain.LedgerEntry{
		ID:         uuid.NewString(),
		System:     system,
		Date:       now.Format(time.DateOnly),
		Amount:     draft.Amount,
		Balance:    previous.Add(draft.Amount),
		Kind:       draft.Kind,
		PurchaseID: draft.PurchaseID,
	}

	err := tx.QueryRow(ctx,
		`INSERT INTO ledger_entries (id, system, entry_date, amount, balance, kind, purchase_id)
		 VALUES ($1, $2, $3::date, $4, $5, $6, $7)
		 RETURNING seq, created_at`,
		entry.ID, entry.System, entry.Date, entry.Amount, entry.Balance, entry.Kind, entry.PurchaseID,
	).Scan(&entry.Seq, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert ledger entry for system %q: %w", system, err)
	}

	return entry, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func latestBalance(ctx context.Context, q queryRower, system string) (decimal.Decimal, error) {
	balance := decimal.Zero
	err := q.QueryRow(ctx,
		`SELECT COALESCE(
		    (SELECT balance FROM ledger_entries WHERE system = $1 ORDER BY seq DESC LIMIT 1),
		    0)`,
		system,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
