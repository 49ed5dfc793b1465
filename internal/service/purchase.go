package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/avc/purchase-ledger/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PurchaseService согласует изменения покупок с журналом баланса.
// Это единственное место, где хранилище покупок и журнал связаны между собой.
type PurchaseService struct {
	purchases domain.PurchaseStore
	ledger    domain.LedgerStore
	locker    domain.ScopeLocker
	publisher domain.ChangePublisher
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewPurchaseService создает новый PurchaseService
func NewPurchaseService(
	purchases domain.PurchaseStore,
	ledger domain.LedgerStore,
	locker domain.ScopeLocker,
	publisher domain.ChangePublisher,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		ledger:    ledger,
		locker:    locker,
		publisher: publisher,
		validate:  newValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitNewPurchase создает покупку. Если покупка оплачена с баланса,
// сначала списывается ее стоимость; при нехватке средств ничего не сохраняется.
func (s *PurchaseService) SubmitNewPurchase(ctx context.Context, system string, form domain.PurchaseForm) (*domain.Purchase, error) {
	if err := validateStruct(s.validate, form); err != nil {
		return nil, err
	}

	p := form.ToPurchase(system)
	p.ID = uuid.NewString()
	normalizeMoney(p)
	if p.PurchaseStatus != domain.PurchaseStatusCompleted {
		p.PaymentMethod = nil
	}
	if err := checkPurchaseState(p, true); err != nil {
		return nil, err
	}

	var (
		created *domain.Purchase
		entry   *domain.LedgerEntry
	)
	err := s.withScope(ctx, system, func() error {
		var err error
		entry, err = s.applyAdjustment(ctx, system, planAdjustment(nil, p), p.ID)
		if err != nil {
			return err
		}

		created, err = s.purchases.Create(ctx, p)
		if err != nil {
			s.compensate(ctx, system, entry)
			return s.wrap(err, "failed to create purchase")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, system, domain.ChangePurchaseCreated, created.ID)
	if entry != nil {
		s.publish(ctx, system, domain.ChangeLedgerAppended, entry.ID)
	}

	return created, nil
}

// ApplyPurchaseEdit применяет частичное изменение покупки и согласует баланс
// со старым и новым состоянием.
func (s *PurchaseService) ApplyPurchaseEdit(ctx context.Context, system, id string, upd domain.PurchaseUpdate) error {
	if err := validateStruct(s.validate, upd); err != nil {
		return err
	}
	upd.Amount = roundMoneyPtr(upd.Amount)
	upd.Commission = roundMoneyPtr(upd.Commission)
	upd.AppraisalFee = roundMoneyPtr(upd.AppraisalFee)
	upd.ShippingFee = roundMoneyPtr(upd.ShippingFee)

	var entry *domain.LedgerEntry
	err := s.withScope(ctx, system, func() error {
		old, err := s.purchases.Get(ctx, system, id)
		if err != nil {
			return s.wrap(err, "failed to load purchase")
		}
		if upd.IsEmpty() {
			return nil
		}

		next := old.Apply(upd)
		if next.PurchaseStatus != domain.PurchaseStatusCompleted && next.PaymentMethod != nil {
			upd.ClearPaymentMethod = true
			next = old.Apply(upd)
		}
		deliveryChanged := upd.DeliveryStatus != nil || upd.TrackingNumber != nil
		if err := checkPurchaseState(next, deliveryChanged); err != nil {
			return err
		}

		entry, err = s.applyAdjustment(ctx, system, planAdjustment(old, next), id)
		if err != nil {
			return err
		}

		if err := s.purchases.Update(ctx, system, id, upd); err != nil {
			s.compensate(ctx, system, entry)
			return s.wrap(err, "failed to update purchase")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !upd.IsEmpty() {
		s.publish(ctx, system, domain.ChangePurchaseUpdated, id)
	}
	if entry != nil {
		s.publish(ctx, system, domain.ChangeLedgerAppended, entry.ID)
	}

	return nil
}

// DeletePurchase удаляет покупку. Записи журнала, связанные с ней, остаются.
func (s *PurchaseService) DeletePurchase(ctx context.Context, system, id string) error {
	if err := s.purchases.Delete(ctx, system, id); err != nil {
		return s.wrap(err, "failed to delete purchase")
	}

	s.publish(ctx, system, domain.ChangePurchaseDeleted, id)
	return nil
}

// GetPurchase возвращает покупку по идентификатору
func (s *PurchaseService) GetPurchase(ctx context.Context, system, id string) (*domain.Purchase, error) {
	p, err := s.purchases.Get(ctx, system, id)
	if err != nil {
		return nil, s.wrap(err, "failed to get purchase")
	}
	return p, nil
}

// ListPurchases возвращает покупки системы, прошедшие фильтр, новые первыми
func (s *PurchaseService) ListPurchases(ctx context.Context, system string, filter domain.PurchaseFilter) ([]*domain.Purchase, error) {
	all, err := s.purchases.List(ctx, system)
	if err != nil {
		return nil, s.wrap(err, "failed to list purchases")
	}

	result := make([]*domain.Purchase, 0, len(all))
	for _, p := range all {
		if filter.Match(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// withScope выполняет fn под блокировкой системы
func (s *PurchaseService) withScope(ctx context.Context, system string, fn func() error) error {
	unlock, err := s.locker.Lock(ctx, system)
	if err != nil {
		return fmt.Errorf("purchase service: failed to lock system %q: %w", system, err)
	}
	defer unlock()

	return fn()
}

// applyAdjustment записывает изменение баланса. Для пустого изменения возвращает nil.
func (s *PurchaseService) applyAdjustment(ctx context.Context, system string, adj adjustment, purchaseID string) (*domain.LedgerEntry, error) {
	if adj.isNoop() {
		return nil, nil
	}

	draft := domain.EntryDraft{Amount: adj.amount, Kind: adj.kind, PurchaseID: &purchaseID}

	var (
		entry *domain.LedgerEntry
		err   error
	)
	if adj.kind == domain.EntryKindDeduction {
		entry, err = s.ledger.Deduct(ctx, system, draft)
	} else {
		entry, err = s.ledger.AppendEntry(ctx, system, draft)
	}

	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			metrics.InsufficientBalanceTotal.Inc()
		}
		return nil, s.wrap(err, "failed to apply ledger adjustment")
	}

	metrics.LedgerEntriesTotal.WithLabelValues(string(entry.Kind)).Inc()
	return entry, nil
}

// compensate добавляет обратную запись, если покупку не удалось сохранить
// после изменения баланса. Повторных попыток нет.
func (s *PurchaseService) compensate(ctx context.Context, system string, entry *domain.LedgerEntry) {
	if entry == nil {
		return
	}

	reversal, err := s.ledger.AppendEntry(context.WithoutCancel(ctx), system, domain.EntryDraft{
		Amount:     entry.Amount.Neg(),
		Kind:       domain.EntryKindReversal,
		PurchaseID: entry.PurchaseID,
	})
	if err != nil {
		s.logger.Error("failed to reverse ledger entry after purchase store failure",
			zap.String("system", system),
			zap.String("entry_id", entry.ID),
			zap.String("amount", entry.Amount.String()),
			zap.Error(err),
		)
		return
	}

	metrics.LedgerEntriesTotal.WithLabelValues(string(domain.EntryKindReversal)).Inc()
	s.logger.Warn("ledger entry reversed after purchase store failure",
		zap.String("system", system),
		zap.String("entry_id", entry.ID),
		zap.String("reversal_id", reversal.ID),
	)
}

func (s *PurchaseService) publish(ctx context.Context, system string, kind domain.ChangeKind, id string) {
	if s.publisher == nil {
		return
	}

	event := domain.ChangeEvent{System: system, Kind: kind, ID: id, At: s.now()}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish change event",
			zap.String("system", system),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}

func (s *PurchaseService) wrap(err error, action string) error {
	if isDomainError(err) {
		return err
	}
	return fmt.Errorf("purchase service: %s: %w", action, err)
}

func normalizeMoney(p *domain.Purchase) {
	p.Amount = roundMoney(p.Amount)
	p.Commission = roundMoneyPtr(p.Commission)
	p.AppraisalFee = roundMoneyPtr(p.AppraisalFee)
	p.ShippingFee = roundMoneyPtr(p.ShippingFee)
}
