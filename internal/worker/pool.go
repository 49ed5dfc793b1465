// Package worker периодически обновляет локальное зеркало данных систем.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	"go.uber.org/zap"
)

const refreshTimeout = 30 * time.Second

// Pool представляет пул воркеров, обновляющих снимки систем
type Pool struct {
	workers      int
	queue        chan string
	systems      []string
	refresher    domain.SnapshotRefresher
	logger       *zap.Logger
	workersWG    sync.WaitGroup
	scannerWG    sync.WaitGroup
	scanInterval time.Duration
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	systems []string,
	refresher domain.SnapshotRefresher,
	scanInterval time.Duration,
	logger *zap.Logger,
) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:      workers,
		queue:        make(chan string, len(systems)),
		systems:      systems,
		refresher:    refresher,
		logger:       logger,
		scanInterval: scanInterval,
	}
}

// Start запускает worker pool. Первый обход систем выполняется сразу.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.workersWG.Add(1)
		go p.worker(ctx, i)
	}

	p.scannerWG.Add(1)
	go p.scanner(ctx)
}

// Stop дожидается остановки сканера и воркеров. Вызывается после отмены контекста Start.
func (p *Pool) Stop() {
	p.scannerWG.Wait()
	close(p.queue)
	p.workersWG.Wait()
}

// worker обновляет снимки систем из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.workersWG.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case system, ok := <-p.queue:
			if !ok {
				return
			}
			p.refresh(ctx, system)
		}
	}
}

// scanner периодически ставит системы в очередь на обновление
func (p *Pool) scanner(ctx context.Context) {
	defer p.scannerWG.Done()

	p.enqueueSystems(ctx)

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.enqueueSystems(ctx)
		}
	}
}

// enqueueSystems отправляет системы в очередь. Система, которая еще ждет
// обновления с прошлого обхода, пропускается.
func (p *Pool) enqueueSystems(ctx context.Context) {
	for _, system := range p.systems {
		select {
		case p.queue <- system:
		case <-ctx.Done():
			return
		default:
			p.logger.Warn("queue is full, skipping system", zap.String("system", system))
		}
	}
}

// refresh обновляет снимок одной системы
func (p *Pool) refresh(ctx context.Context, system string) {
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	start := time.Now()
	if err := p.refresher.Refresh(ctx, system); err != nil {
		p.logger.Warn("failed to refresh mirror snapshot",
			zap.String("system", system),
			zap.Error(err),
		)
		return
	}

	p.logger.Debug("mirror snapshot refreshed",
		zap.String("system", system),
		zap.Duration("duration", time.Since(start)),
	)
}
