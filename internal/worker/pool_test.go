package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domainmocks "github.com/avc/purchase-ledger/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestPool_Refresh(t *testing.T) {
	mockRefresher := domainmocks.NewSnapshotRefresherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, []string{"ella"}, mockRefresher, time.Minute, logger)

	mockRefresher.EXPECT().Refresh(mock.Anything, "ella").Return(nil).Once()

	pool.refresh(context.Background(), "ella")
}

func TestPool_Refresh_Error(t *testing.T) {
	mockRefresher := domainmocks.NewSnapshotRefresherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, []string{"ella"}, mockRefresher, time.Minute, logger)

	// Ошибка только логируется, следующий обход повторит попытку
	mockRefresher.EXPECT().Refresh(mock.Anything, "ella").Return(errors.New("primary down")).Once()

	pool.refresh(context.Background(), "ella")
}

func TestPool_Refresh_HasDeadline(t *testing.T) {
	mockRefresher := domainmocks.NewSnapshotRefresherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, []string{"ella"}, mockRefresher, time.Minute, logger)

	mockRefresher.EXPECT().Refresh(mock.Anything, "ella").
		Run(func(ctx context.Context, _ string) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
		}).
		Return(nil).Once()

	pool.refresh(context.Background(), "ella")
}

func TestPool_StartRefreshesEverySystem(t *testing.T) {
	mockRefresher := domainmocks.NewSnapshotRefresherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(2, []string{"ella", "vmce"}, mockRefresher, time.Hour, logger)

	var wg sync.WaitGroup
	wg.Add(2)
	mockRefresher.EXPECT().Refresh(mock.Anything, "ella").Run(func(context.Context, string) { wg.Done() }).Return(nil).Once()
	mockRefresher.EXPECT().Refresh(mock.Anything, "vmce").Run(func(context.Context, string) { wg.Done() }).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("initial scan did not refresh every system")
	}

	cancel()
	pool.Stop()
}

func TestPool_EnqueueSkipsWhenFull(t *testing.T) {
	mockRefresher := domainmocks.NewSnapshotRefresherMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(1, []string{"ella"}, mockRefresher, time.Minute, logger)

	ctx := context.Background()
	pool.enqueueSystems(ctx)
	// Очередь вмещает одну систему, второй обход не блокируется
	pool.enqueueSystems(ctx)

	assert.Len(t, pool.queue, 1)
}

func TestPool_StopAfterCancel(t *testing.T) {
	mockRefresher := domainmocks.NewSnapshotRefresherMock(t)
	logger, _ := zap.NewDevelopment()

	mockRefresher.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil).Maybe()

	pool := NewPool(3, []string{"ella"}, mockRefresher, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	stopped := make(chan struct{})
	go func() {
		pool.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Error("pool did not stop")
	}
}
