// Package memory содержит хранилища в памяти для разработки и тестов.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger хранит журнал баланса в памяти.
// Записи каждой системы хранятся в порядке создания.
type Ledger struct {
	mu      sync.Mutex
	entries map[string][]*domain.LedgerEntry
	now     func() time.Time
}

// NewLedger создает пустой журнал
func NewLedger() *Ledger {
	return &Ledger{
		entries: make(map[string][]*domain.LedgerEntry),
		now:     time.Now,
	}
}

// CurrentBalance возвращает баланс последней записи или ноль
func (l *Ledger) CurrentBalance(_ context.Context, system string) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balanceLocked(system), nil
}

// ListEntries возвращает записи, новые первыми
func (l *Ledger) ListEntries(_ context.Context, system string) ([]*domain.LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	src := l.entries[system]
	out := make([]*domain.LedgerEntry, 0, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		e := *src[i]
		out = append(out, &e)
	}
	return out, nil
}

// AppendEntry добавляет запись без проверки остатка
func (l *Ledger) AppendEntry(_ context.Context, system string, draft domain.EntryDraft) (*domain.LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.appendLocked(system, draft), nil
}

// Deduct списывает draft.Amount, если баланса достаточно
func (l *Ledger) Deduct(_ context.Context, system string, draft domain.EntryDraft) (*domain.LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	available := l.balanceLocked(system)
	if available.LessThan(draft.Amount) {
		return nil, domain.NewInsufficientBalanceError(draft.Amount, available)
	}

	draft.Amount = draft.Amount.Neg()
	return l.appendLocked(system, draft), nil
}

func (l *Ledger) balanceLocked(system string) decimal.Decimal {
	entries := l.entries[system]
	if len(entries) == 0 {
		return decimal.Zero
	}
	return entries[len(entries)-1].Balance
}

func (l *Ledger) appendLocked(system string, draft domain.EntryDraft) *domain.LedgerEntry {
	now := l.now()
	entry := &domain.LedgerEntry{
		ID:         uuid.NewString(),
		Seq:        int64(len(l.entries[system]) + 1),
		System:     system,
		Date:       now.Format(time.DateOnly),
		Amount:     draft.Amount,
		Balance:    l.balanceLocked(system).Add(draft.Amount),
		Kind:       draft.Kind,
		PurchaseID: draft.PurchaseID,
		CreatedAt:  now,
	}
	l.entries[system] = append(l.entries[system], entry)

	out := *entry
	return &out
}
