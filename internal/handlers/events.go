package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	"go.uber.org/zap"
)

const keepAliveInterval = 25 * time.Second

// EventsHandler транслирует события изменения данных системы через Server-Sent Events
type EventsHandler struct {
	subscriber domain.ChangeSubscriber
	logger     *zap.Logger
}

func NewEventsHandler(subscriber domain.ChangeSubscriber, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		subscriber: subscriber,
		logger:     logger,
	}
}

func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	events, err := h.subscriber.Subscribe(r.Context(), system)
	if err != nil {
		h.logger.Error("failed to subscribe to changes", zap.String("system", system), zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	// Поток живет дольше WriteTimeout сервера
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("failed to encode change event", zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Kind, payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
