package cached

import (
	"context"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/avc/purchase-ledger/internal/repository/sqlite"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger - журнал баланса с чтением из зеркала при отказе основного хранилища
type Ledger struct {
	primary domain.LedgerStore
	mirror  *sqlite.Mirror
	status  *Status
	logger  *zap.Logger
}

// NewLedger создает Ledger
func NewLedger(primary domain.LedgerStore, mirror *sqlite.Mirror, status *Status, logger *zap.Logger) *Ledger {
	return &Ledger{primary: primary, mirror: mirror, status: status, logger: logger}
}

// CurrentBalance возвращает текущий баланс
func (l *Ledger) CurrentBalance(ctx context.Context, system string) (decimal.Decimal, error) {
	balance, err := l.primary.CurrentBalance(ctx, system)
	if !isPrimaryFailure(err) {
		if err == nil {
			l.status.MarkHealthy()
		}
		return balance, err
	}

	l.status.MarkDegraded(err)
	balance, mirrorErr := l.mirror.CurrentBalance(ctx, system)
	if mirrorErr != nil {
		l.logger.Error("mirror read failed", zap.String("system", system), zap.Error(mirrorErr))
		return decimal.Zero, unavailable(err)
	}
	return balance, nil
}

// ListEntries возвращает записи журнала, новые первыми
func (l *Ledger) ListEntries(ctx context.Context, system string) ([]*domain.LedgerEntry, error) {
	entries, err := l.primary.ListEntries(ctx, system)
	if !isPrimaryFailure(err) {
		if err == nil {
			l.status.MarkHealthy()
		}
		return entries, err
	}

	l.status.MarkDegraded(err)
	entries, mirrorErr := l.mirror.ListEntries(ctx, system)
	if mirrorErr != nil {
		l.logger.Error("mirror read failed", zap.String("system", system), zap.Error(mirrorErr))
		return nil, unavailable(err)
	}
	return entries, nil
}

// AppendEntry добавляет запись в основное хранилище и копирует ее в зеркало
func (l *Ledger) AppendEntry(ctx context.Context, system string, draft domain.EntryDraft) (*domain.LedgerEntry, error) {
	entry, err := l.primary.AppendEntry(ctx, system, draft)
	return l.afterWrite(ctx, entry, err)
}

// Deduct списывает средства в основном хранилище и копирует запись в зеркало
func (l *Ledger) Deduct(ctx context.Context, system string, draft domain.EntryDraft) (*domain.LedgerEntry, error) {
	entry, err := l.primary.Deduct(ctx, system, draft)
	return l.afterWrite(ctx, entry, err)
}

func (l *Ledger) afterWrite(ctx context.Context, entry *domain.LedgerEntry, err error) (*domain.LedgerEntry, error) {
	if isPrimaryFailure(err) {
		l.status.MarkDegraded(err)
		return nil, unavailable(err)
	}
	if err != nil {
		return nil, err
	}

	l.status.MarkHealthy()
	if mirrorErr := l.mirror.PutEntry(ctx, entry); mirrorErr != nil {
		// Зеркало догонит основное хранилище при следующем обновлении снимка
		l.logger.Warn("failed to mirror ledger entry", zap.String("entry_id", entry.ID), zap.Error(mirrorErr))
	}
	return entry, nil
}
