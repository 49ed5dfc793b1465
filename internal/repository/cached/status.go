// Package cached объединяет основное хранилище и локальное зеркало SQLite.
//
// Чтение идет из основного хранилища. Если оно недоступно, данные читаются
// из зеркала, а Status переходит в режим деградации. Запись всегда требует
// основного хранилища: при его недоступности возвращается
// domain.ErrStoreUnavailable, операция не ставится в очередь и не повторяется.
package cached

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/avc/purchase-ledger/internal/metrics"
	"go.uber.org/zap"
)

// Status хранит признак деградации основного хранилища
type Status struct {
	degraded atomic.Bool
	logger   *zap.Logger
}

// NewStatus создает Status в нормальном режиме
func NewStatus(logger *zap.Logger) *Status {
	return &Status{logger: logger}
}

// Degraded сообщает, что данные читаются из зеркала
func (s *Status) Degraded() bool {
	return s.degraded.Load()
}

// MarkDegraded переводит хранилище в режим деградации
func (s *Status) MarkDegraded(err error) {
	if !s.degraded.Swap(true) {
		s.logger.Warn("primary store unavailable, serving reads from mirror", zap.Error(err))
		metrics.StoreDegraded.Set(1)
	}
}

// MarkHealthy возвращает хранилище в нормальный режим
func (s *Status) MarkHealthy() {
	if s.degraded.Swap(false) {
		s.logger.Info("primary store recovered")
		metrics.StoreDegraded.Set(0)
	}
}

// isPrimaryFailure отличает отказ хранилища от доменных ошибок и отмены запроса
func isPrimaryFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled),
		errors.Is(err, domain.ErrPurchaseNotFound),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidPurchase),
		errors.Is(err, domain.ErrStoreUnavailable):
		return false
	}
	return true
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
