package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/avc/purchase-ledger/internal/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StoreStatus сообщает, что данные читаются из локального зеркала
type StoreStatus interface {
	Degraded() bool
}

// BalanceService предоставляет операции с балансом.
type BalanceService struct {
	ledger    domain.LedgerStore
	publisher domain.ChangePublisher
	status    StoreStatus
	logger    *zap.Logger
	now       func() time.Time
}

// NewBalanceService создает новый BalanceService. status может быть nil,
// если зеркало не используется.
func NewBalanceService(ledger domain.LedgerStore, publisher domain.ChangePublisher, status StoreStatus, logger *zap.Logger) *BalanceService {
	return &BalanceService{
		ledger:    ledger,
		publisher: publisher,
		status:    status,
		logger:    logger,
		now:       time.Now,
	}
}

// GetBalance возвращает текущий баланс и его значение в валюте отображения
func (s *BalanceService) GetBalance(ctx context.Context, system string) (*domain.Balance, error) {
	current, err := s.ledger.CurrentBalance(ctx, system)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("balance service: failed to get balance for system %q: %w", system, err)
	}

	return &domain.Balance{
		Current:  current,
		Display:  domain.ToDisplayCurrency(current),
		Degraded: s.status != nil && s.status.Degraded(),
	}, nil
}

// ListEntries возвращает историю баланса, новые записи первыми
func (s *BalanceService) ListEntries(ctx context.Context, system string) ([]*domain.LedgerEntry, error) {
	entries, err := s.ledger.ListEntries(ctx, system)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("balance service: failed to list entries for system %q: %w", system, err)
	}
	return entries, nil
}

// AddCharge пополняет баланс на положительную сумму
func (s *BalanceService) AddCharge(ctx context.Context, system string, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	if !domain.AmountInRange(amount) {
		return nil, fmt.Errorf("%w: out of range, max %s", domain.ErrInvalidAmount, domain.MaxAmount.String())
	}
	amount = roundMoney(amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s must be positive", domain.ErrInvalidAmount, amount.String())
	}

	entry, err := s.ledger.AppendEntry(ctx, system, domain.EntryDraft{
		Amount: amount,
		Kind:   domain.EntryKindCharge,
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("balance service: failed to add charge %s for system %q: %w", amount.String(), system, err)
	}

	metrics.LedgerEntriesTotal.WithLabelValues(string(domain.EntryKindCharge)).Inc()

	if s.publisher != nil {
		event := domain.ChangeEvent{System: system, Kind: domain.ChangeLedgerAppended, ID: entry.ID, At: s.now()}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish change event", zap.String("system", system), zap.Error(err))
		}
	}

	return entry, nil
}
