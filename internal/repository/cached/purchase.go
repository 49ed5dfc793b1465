package cached

import (
	"context"
	"errors"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/avc/purchase-ledger/internal/repository/sqlite"
	"go.uber.org/zap"
)

// Purchases - хранилище покупок с чтением из зеркала при отказе основного хранилища
type Purchases struct {
	primary domain.PurchaseStore
	mirror  *sqlite.Mirror
	status  *Status
	logger  *zap.Logger
}

// NewPurchases создает Purchases
func NewPurchases(primary domain.PurchaseStore, mirror *sqlite.Mirror, status *Status, logger *zap.Logger) *Purchases {
	return &Purchases{primary: primary, mirror: mirror, status: status, logger: logger}
}

// Create сохраняет покупку в основном хранилище
func (s *Purchases) Create(ctx context.Context, p *domain.Purchase) (*domain.Purchase, error) {
	created, err := s.primary.Create(ctx, p)
	if err := s.checkWrite(err); err != nil {
		return nil, err
	}

	s.mirrorPut(ctx, created)
	return created, nil
}

// Update изменяет покупку в основном хранилище
func (s *Purchases) Update(ctx context.Context, system, id string, upd domain.PurchaseUpdate) error {
	if err := s.checkWrite(s.primary.Update(ctx, system, id, upd)); err != nil {
		return err
	}

	if updated, err := s.primary.Get(ctx, system, id); err == nil {
		s.mirrorPut(ctx, updated)
	}
	return nil
}

// Delete удаляет покупку из основного хранилища и зеркала
func (s *Purchases) Delete(ctx context.Context, system, id string) error {
	if err := s.checkWrite(s.primary.Delete(ctx, system, id)); err != nil {
		return err
	}

	if err := s.mirror.DeletePurchase(ctx, system, id); err != nil {
		s.logger.Warn("failed to delete purchase from mirror", zap.String("purchase_id", id), zap.Error(err))
	}
	return nil
}

// List возвращает покупки системы, новые первыми
func (s *Purchases) List(ctx context.Context, system string) ([]*domain.Purchase, error) {
	purchases, err := s.primary.List(ctx, system)
	if !isPrimaryFailure(err) {
		if err == nil {
			s.status.MarkHealthy()
		}
		return purchases, err
	}

	s.status.MarkDegraded(err)
	purchases, mirrorErr := s.mirror.ListPurchases(ctx, system)
	if mirrorErr != nil {
		s.logger.Error("mirror read failed", zap.String("system", system), zap.Error(mirrorErr))
		return nil, unavailable(err)
	}
	return purchases, nil
}

// Get возвращает покупку по идентификатору
func (s *Purchases) Get(ctx context.Context, system, id string) (*domain.Purchase, error) {
	p, err := s.primary.Get(ctx, system, id)
	if !isPrimaryFailure(err) {
		if err == nil {
			s.status.MarkHealthy()
		}
		return p, err
	}

	s.status.MarkDegraded(err)
	p, mirrorErr := s.mirror.GetPurchase(ctx, system, id)
	if mirrorErr != nil {
		if errors.Is(mirrorErr, domain.ErrPurchaseNotFound) {
			return nil, mirrorErr
		}
		s.logger.Error("mirror read failed", zap.String("system", system), zap.Error(mirrorErr))
		return nil, unavailable(err)
	}
	return p, nil
}

func (s *Purchases) checkWrite(err error) error {
	if isPrimaryFailure(err) {
		s.status.MarkDegraded(err)
		return unavailable(err)
	}
	if err == nil {
		s.status.MarkHealthy()
	}
	return err
}

func (s *Purchases) mirrorPut(ctx context.Context, p *domain.Purchase) {
	if err := s.mirror.PutPurchase(ctx, p); err != nil {
		s.logger.Warn("failed to mirror purchase", zap.String("purchase_id", p.ID), zap.Error(err))
	}
}
