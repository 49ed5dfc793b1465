package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisFeed рассылает события через Redis pub/sub, чтобы их получали
// подписчики всех экземпляров сервиса
type RedisFeed struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisFeed создает RedisFeed
func NewRedisFeed(client *redis.Client, logger *zap.Logger) *RedisFeed {
	return &RedisFeed{client: client, logger: logger}
}

// Publish публикует событие в канал системы
func (f *RedisFeed) Publish(ctx context.Context, event domain.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("realtime: failed to encode event: %w", err)
	}

	if err := f.client.Publish(ctx, channelName(event.System), payload).Err(); err != nil {
		return fmt.Errorf("realtime: failed to publish to %q: %w", channelName(event.System), err)
	}
	return nil
}

// Subscribe подписывается на канал системы. Канал закрывается при отмене ctx.
func (f *RedisFeed) Subscribe(ctx context.Context, system string) (<-chan domain.ChangeEvent, error) {
	pubsub := f.client.Subscribe(ctx, channelName(system))

	// Дожидаемся подтверждения подписки, чтобы вернуть ошибку соединения сразу
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("realtime: failed to subscribe to %q: %w", channelName(system), err)
	}

	out := make(chan domain.ChangeEvent, subscriberBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var event domain.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					f.logger.Warn("skipping malformed change event", zap.String("channel", msg.Channel), zap.Error(err))
					continue
				}

				select {
				case out <- event:
				default:
				}
			}
		}
	}()

	return out, nil
}

func channelName(system string) string {
	return "purchase-ledger:changes:" + system
}
