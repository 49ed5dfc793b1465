// Package realtime доставляет события изменения данных подписчикам системы.
package realtime

import (
	"context"
	"sync"

	"github.com/avc/purchase-ledger/internal/domain"
)

const subscriberBuffer = 16

// Hub рассылает события подписчикам внутри одного процесса.
// Медленный подписчик теряет события, но не блокирует публикацию.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan domain.ChangeEvent]struct{}
}

// NewHub создает Hub
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan domain.ChangeEvent]struct{})}
}

// Publish отправляет событие всем подписчикам системы
func (h *Hub) Publish(_ context.Context, event domain.ChangeEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[event.System] {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

// Subscribe возвращает канал событий системы. Канал закрывается при отмене ctx.
func (h *Hub) Subscribe(ctx context.Context, system string) (<-chan domain.ChangeEvent, error) {
	ch := make(chan domain.ChangeEvent, subscriberBuffer)

	h.mu.Lock()
	if h.subs[system] == nil {
		h.subs[system] = make(map[chan domain.ChangeEvent]struct{})
	}
	h.subs[system][ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()

		h.mu.Lock()
		delete(h.subs[system], ch)
		if len(h.subs[system]) == 0 {
			delete(h.subs, system)
		}
		h.mu.Unlock()

		close(ch)
	}()

	return ch, nil
}
