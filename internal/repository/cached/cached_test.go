package cached

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	domainmocks "github.com/avc/purchase-ledger/internal/domain/mocks"
	"github.com/avc/purchase-ledger/internal/repository/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func newMirror(t *testing.T) *sqlite.Mirror {
	t.Helper()
	m, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestLedger_FallsBackToMirror(t *testing.T) {
	ctx := context.Background()
	mirror := newMirror(t)
	primary := domainmocks.NewLedgerStoreMock(t)
	status := NewStatus(zap.NewNop())
	ledger := NewLedger(primary, mirror, status, zap.NewNop())

	require.NoError(t, mirror.PutEntry(ctx, &domain.LedgerEntry{
		ID: "e-1", System: "ella", Amount: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100), Kind: domain.EntryKindCharge,
	}))

	primary.EXPECT().CurrentBalance(mock.Anything, "ella").Return(decimal.Zero, errConnRefused).Once()

	balance, err := ledger.CurrentBalance(ctx, "ella")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, status.Degraded())

	// Восстановление основного хранилища снимает деградацию
	primary.EXPECT().CurrentBalance(mock.Anything, "ella").Return(decimal.NewFromInt(120), nil).Once()

	balance, err = ledger.CurrentBalance(ctx, "ella")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(120)))
	assert.False(t, status.Degraded())
}

func TestLedger_WritesFailWhilePrimaryDown(t *testing.T) {
	ctx := context.Background()
	mirror := newMirror(t)
	primary := domainmocks.NewLedgerStoreMock(t)
	status := NewStatus(zap.NewNop())
	ledger := NewLedger(primary, mirror, status, zap.NewNop())

	draft := domain.EntryDraft{Amount: decimal.NewFromInt(30), Kind: domain.EntryKindCharge}
	primary.EXPECT().AppendEntry(mock.Anything, "ella", draft).Return(nil, errConnRefused).Once()

	entry, err := ledger.AppendEntry(ctx, "ella", draft)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.True(t, status.Degraded())

	// Ничего не попало в зеркало
	entries, err := mirror.ListEntries(ctx, "ella")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLedger_InsufficientBalanceIsNotAnOutage(t *testing.T) {
	ctx := context.Background()
	primary := domainmocks.NewLedgerStoreMock(t)
	status := NewStatus(zap.NewNop())
	ledger := NewLedger(primary, newMirror(t), status, zap.NewNop())

	draft := domain.EntryDraft{Amount: decimal.NewFromInt(50), Kind: domain.EntryKindDeduction}
	primary.EXPECT().Deduct(mock.Anything, "ella", draft).
		Return(nil, domain.NewInsufficientBalanceError(decimal.NewFromInt(50), decimal.NewFromInt(40))).Once()

	_, err := ledger.Deduct(ctx, "ella", draft)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.False(t, status.Degraded())
}

func TestLedger_SuccessfulWriteIsMirrored(t *testing.T) {
	ctx := context.Background()
	mirror := newMirror(t)
	primary := domainmocks.NewLedgerStoreMock(t)
	ledger := NewLedger(primary, mirror, NewStatus(zap.NewNop()), zap.NewNop())

	draft := domain.EntryDraft{Amount: decimal.NewFromInt(100), Kind: domain.EntryKindCharge}
	primary.EXPECT().AppendEntry(mock.Anything, "ella", draft).Return(&domain.LedgerEntry{
		ID: "e-1", System: "ella", Amount: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100), Kind: domain.EntryKindCharge,
	}, nil).Once()

	_, err := ledger.AppendEntry(ctx, "ella", draft)
	require.NoError(t, err)

	balance, err := mirror.CurrentBalance(ctx, "ella")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(100)))
}

func TestLedger_MirrorKeepsPrimaryOrderForRacingWrites(t *testing.T) {
	ctx := context.Background()
	mirror := newMirror(t)
	primary := domainmocks.NewLedgerStoreMock(t)
	ledger := NewLedger(primary, mirror, NewStatus(zap.NewNop()), zap.NewNop())

	charge := domain.EntryDraft{Amount: decimal.NewFromInt(40), Kind: domain.EntryKindCharge}
	deduction := domain.EntryDraft{Amount: decimal.NewFromInt(30), Kind: domain.EntryKindDeduction}

	// Списание записано в основное хранилище позже, но вернулось первым
	primary.EXPECT().Deduct(mock.Anything, "ella", deduction).Return(&domain.LedgerEntry{
		ID: "e-2", Seq: 2, System: "ella", Amount: decimal.NewFromInt(-30), Balance: decimal.NewFromInt(10), Kind: domain.EntryKindDeduction,
	}, nil).Once()
	primary.EXPECT().AppendEntry(mock.Anything, "ella", charge).Return(&domain.LedgerEntry{
		ID: "e-1", Seq: 1, System: "ella", Amount: decimal.NewFromInt(40), Balance: decimal.NewFromInt(40), Kind: domain.EntryKindCharge,
	}, nil).Once()

	_, err := ledger.Deduct(ctx, "ella", deduction)
	require.NoError(t, err)
	_, err = ledger.AppendEntry(ctx, "ella", charge)
	require.NoError(t, err)

	primary.EXPECT().CurrentBalance(mock.Anything, "ella").Return(decimal.Zero, errConnRefused).Once()

	balance, err := ledger.CurrentBalance(ctx, "ella")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(10)), "got %s", balance)
}

func TestPurchases_ReadFallbackAndWriteFailure(t *testing.T) {
	ctx := context.Background()
	mirror := newMirror(t)
	primary := domainmocks.NewPurchaseStoreMock(t)
	status := NewStatus(zap.NewNop())
	store := NewPurchases(primary, mirror, status, zap.NewNop())

	cached := &domain.Purchase{ID: "p-1", System: "ella", ApplicationNumber: 1, ProductName: "Tote", CreatedAt: time.Now()}
	require.NoError(t, mirror.PutPurchase(ctx, cached))

	primary.EXPECT().List(mock.Anything, "ella").Return(nil, errConnRefused).Once()
	list, err := store.List(ctx, "ella")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tote", list[0].ProductName)
	assert.True(t, status.Degraded())

	primary.EXPECT().Get(mock.Anything, "ella", "missing").Return(nil, errConnRefused).Once()
	_, err = store.Get(ctx, "ella", "missing")
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)

	primary.EXPECT().Delete(mock.Anything, "ella", "p-1").Return(errConnRefused).Once()
	err = store.Delete(ctx, "ella", "p-1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	// Неудачная запись не трогает зеркало
	_, err = mirror.GetPurchase(ctx, "ella", "p-1")
	assert.NoError(t, err)
}

func TestPurchases_NotFoundPassesThrough(t *testing.T) {
	ctx := context.Background()
	primary := domainmocks.NewPurchaseStoreMock(t)
	status := NewStatus(zap.NewNop())
	store := NewPurchases(primary, newMirror(t), status, zap.NewNop())

	primary.EXPECT().Update(mock.Anything, "ella", "p-9", domain.PurchaseUpdate{}).Return(domain.ErrPurchaseNotFound).Once()

	err := store.Update(ctx, "ella", "p-9", domain.PurchaseUpdate{})
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
	assert.False(t, status.Degraded())
}

func TestSyncer_Refresh(t *testing.T) {
	ctx := context.Background()
	mirror := newMirror(t)
	ledger := domainmocks.NewLedgerStoreMock(t)
	purchases := domainmocks.NewPurchaseStoreMock(t)
	status := NewStatus(zap.NewNop())
	syncer := NewSyncer(ledger, purchases, mirror, status)

	purchases.EXPECT().List(mock.Anything, "vmce").Return([]*domain.Purchase{
		{ID: "p-1", System: "vmce", ApplicationNumber: 1, CreatedAt: time.Now()},
	}, nil).Once()
	ledger.EXPECT().ListEntries(mock.Anything, "vmce").Return([]*domain.LedgerEntry{
		{ID: "e-1", System: "vmce", Amount: decimal.NewFromInt(70), Balance: decimal.NewFromInt(70)},
	}, nil).Once()

	require.NoError(t, syncer.Refresh(ctx, "vmce"))

	balance, err := mirror.CurrentBalance(ctx, "vmce")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(70)))

	purchases.EXPECT().List(mock.Anything, "vmce").Return(nil, errConnRefused).Once()
	assert.Error(t, syncer.Refresh(ctx, "vmce"))
	assert.True(t, status.Degraded())

	// Старый снимок остается доступен
	list, err := mirror.ListPurchases(ctx, "vmce")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
