package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger проверяет доступность основного хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// DegradedReporter сообщает, что чтения обслуживает локальное зеркало
type DegradedReporter interface {
	Degraded() bool
}

// SnapshotClock сообщает время последнего снимка системы в зеркале
type SnapshotClock interface {
	RefreshedAt(ctx context.Context, system string) (time.Time, bool, error)
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db        Pinger
	status    DegradedReporter
	snapshots SnapshotClock
	systems   []string
	logger    *zap.Logger
}

// NewHealthHandler создает новый HealthHandler. db, status и snapshots могут быть nil
// при работе с хранилищем в памяти.
func NewHealthHandler(db Pinger, status DegradedReporter, snapshots SnapshotClock, systems []string, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		status:    status,
		snapshots: snapshots,
		systems:   systems,
		logger:    logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status    string                   `json:"status"`
	Database  string                   `json:"database"`
	Mirror    string                   `json:"mirror"`
	Snapshots map[string]SnapshotState `json:"snapshots,omitempty"`
}

// SnapshotState описывает свежесть данных, которые отдает зеркало
type SnapshotState struct {
	RefreshedAt *time.Time `json:"refreshedAt,omitempty"`
	Age         string     `json:"age"` // "never", если снимка еще не было
}

// Health возвращает статус приложения. В деградированном режиме сервис
// продолжает отвечать на чтения, поэтому код ответа остается 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:   "ok",
		Database: "ok",
		Mirror:   "idle",
	}

	if h.db == nil {
		response.Database = "memory"
	} else if err := h.ping(r.Context()); err != nil {
		response.Status = "degraded"
		response.Database = "unavailable"
		h.logger.Warn("health check: database unavailable", zap.Error(err))
	}

	if h.status != nil && h.status.Degraded() {
		response.Status = "degraded"
		response.Mirror = "serving"
		response.Snapshots = h.snapshotStates(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", zap.Error(err))
	}
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.ping(r.Context()); err != nil {
			h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// snapshotStates собирает возраст снимков по всем системам
func (h *HealthHandler) snapshotStates(ctx context.Context) map[string]SnapshotState {
	if h.snapshots == nil || len(h.systems) == 0 {
		return nil
	}

	states := make(map[string]SnapshotState, len(h.systems))
	for _, system := range h.systems {
		at, ok, err := h.snapshots.RefreshedAt(ctx, system)
		if err != nil {
			h.logger.Warn("health check: failed to read snapshot time", zap.String("system", system), zap.Error(err))
			states[system] = SnapshotState{Age: "unknown"}
			continue
		}
		if !ok {
			states[system] = SnapshotState{Age: "never"}
			continue
		}
		states[system] = SnapshotState{RefreshedAt: &at, Age: time.Since(at).Truncate(time.Second).String()}
	}
	return states
}

func (h *HealthHandler) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return h.db.Ping(ctx)
}
