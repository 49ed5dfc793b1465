package cached

import (
	"context"
	"fmt"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/avc/purchase-ledger/internal/metrics"
	"github.com/avc/purchase-ledger/internal/repository/sqlite"
)

// Syncer переносит снимок основного хранилища в зеркало
type Syncer struct {
	ledger    domain.LedgerStore
	purchases domain.PurchaseStore
	mirror    *sqlite.Mirror
	status    *Status
}

// NewSyncer создает Syncer. ledger и purchases должны быть основными хранилищами, а не обертками.
func NewSyncer(ledger domain.LedgerStore, purchases domain.PurchaseStore, mirror *sqlite.Mirror, status *Status) *Syncer {
	return &Syncer{ledger: ledger, purchases: purchases, mirror: mirror, status: status}
}

// Refresh заменяет данные системы в зеркале текущим состоянием основного хранилища
func (s *Syncer) Refresh(ctx context.Context, system string) error {
	purchases, err := s.purchases.List(ctx, system)
	if err != nil {
		return s.fail(fmt.Errorf("syncer: failed to list purchases of %q: %w", system, err))
	}

	entries, err := s.ledger.ListEntries(ctx, system)
	if err != nil {
		return s.fail(fmt.Errorf("syncer: failed to list ledger entries of %q: %w", system, err))
	}

	s.status.MarkHealthy()

	if err := s.mirror.ReplaceSnapshot(ctx, system, purchases, entries); err != nil {
		metrics.MirrorRefreshTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("syncer: failed to store snapshot of %q: %w", system, err)
	}

	metrics.MirrorRefreshTotal.WithLabelValues("ok").Inc()
	return nil
}

func (s *Syncer) fail(err error) error {
	metrics.MirrorRefreshTotal.WithLabelValues("error").Inc()
	if isPrimaryFailure(err) {
		s.status.MarkDegraded(err)
	}
	return err
}
