// Package lock сериализует изменения баланса в пределах одной системы.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"go.uber.org/zap"
)

// ErrNotObtained возвращается, если блокировку не удалось взять до истечения контекста
var ErrNotObtained = errors.New("lock: not obtained")

// Local - блокировка в пределах процесса
type Local struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewLocal создает Local
func NewLocal() *Local {
	return &Local{slots: make(map[string]chan struct{})}
}

// Lock ждет освобождения системы или отмены контекста
func (l *Local) Lock(ctx context.Context, system string) (func(), error) {
	slot := l.slot(system)

	select {
	case slot <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-slot }) }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s: %v", ErrNotObtained, system, ctx.Err())
	}
}

func (l *Local) slot(system string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[system]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[system] = slot
	}
	return slot
}

// Redis - распределенная блокировка на Redis для нескольких экземпляров сервиса
type Redis struct {
	locker  *redislock.Client
	ttl     time.Duration
	backoff time.Duration
	logger  *zap.Logger
}

// NewRedis создает Redis-блокировку. ttl ограничивает время удержания,
// если процесс завершится, не сняв блокировку.
func NewRedis(client redislock.RedisClient, ttl time.Duration, logger *zap.Logger) *Redis {
	return &Redis{
		locker:  redislock.New(client),
		ttl:     ttl,
		backoff: 50 * time.Millisecond,
		logger:  logger,
	}
}

// Lock берет блокировку системы, повторяя попытки до отмены контекста
func (r *Redis) Lock(ctx context.Context, system string) (func(), error) {
	key := lockKey(system)

	l, err := r.locker.Obtain(ctx, key, r.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(r.backoff),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s", ErrNotObtained, system)
	}
	if err != nil {
		return nil, fmt.Errorf("lock: failed to obtain %q: %w", key, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// Контекст запроса может быть уже отменен
			if err := l.Release(context.Background()); err != nil {
				r.logger.Warn("failed to release redis lock", zap.String("key", key), zap.Error(err))
			}
		})
	}, nil
}

func lockKey(system string) string {
	return "purchase-ledger:lock:" + system
}
