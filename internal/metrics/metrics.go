// Package metrics содержит метрики Prometheus сервиса.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Общее число HTTP запросов
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Общее число HTTP запросов",
		},
		[]string{"method", "path", "status"},
	)

	// Длительность HTTP запросов
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Длительность HTTP запросов в секундах",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// Запросы, обрабатываемые в данный момент
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Число HTTP запросов в обработке",
		},
	)

	// LedgerEntriesTotal считает записи журнала по типу
	LedgerEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_entries_total",
			Help: "Число добавленных записей журнала баланса",
		},
		[]string{"kind"},
	)

	// InsufficientBalanceTotal считает отклоненные из-за нехватки средств операции
	InsufficientBalanceTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_insufficient_balance_total",
			Help: "Число операций, отклоненных из-за нехватки баланса",
		},
	)

	// StoreDegraded равен 1, пока чтение идет из локального зеркала
	StoreDegraded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_degraded",
			Help: "1, если основное хранилище недоступно и используется зеркало",
		},
	)

	// MirrorRefreshTotal считает обновления зеркала по результату
	MirrorRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mirror_refresh_total",
			Help: "Число обновлений локального зеркала",
		},
		[]string{"result"},
	)
)

// Handler возвращает обработчик /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware собирает метрики HTTP запросов
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Пропускаем служебные эндпоинты
		if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		statusLabel := strconv.Itoa(status)

		httpRequestsTotal.WithLabelValues(r.Method, path, statusLabel).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, statusLabel).Observe(time.Since(start).Seconds())
	})
}
