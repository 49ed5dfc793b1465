package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	serverReadTimeout  = 15 * time.Second
	serverWriteTimeout = 60 * time.Second
	serverIdleTimeout  = 60 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// createServer создает HTTP сервер
func createServer(addr string, handler *chi.Mux) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}
}

// runServer запускает HTTP сервер и ожидает сигнала завершения или ошибки сервера
func (a *App) runServer(ctx context.Context) error {
	serverErr := make(chan error, 1)

	// Запуск HTTP сервера в горутине
	go func() {
		a.logger.Info("starting HTTP server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		return nil
	case <-ctx.Done():
		return nil
	case err := <-serverErr:
		a.closeResources()
		return fmt.Errorf("failed to start server: %w", err)
	}
}

// shutdown выполняет graceful shutdown приложения
func (a *App) shutdown(cancel context.CancelFunc) {
	a.logger.Info("shutting down server...")

	// Останавливаем прием новых запросов
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown error", zap.Error(err))
	}

	// Останавливаем worker pool
	cancel()
	a.workerPool.Stop()
	a.logger.Info("worker pool stopped")

	a.closeResources()

	a.logger.Info("server stopped gracefully")
	_ = a.logger.Sync()
}

// closeResources закрывает соединения с хранилищами
func (a *App) closeResources() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("redis close error", zap.Error(err))
		}
	}
	if a.mirror != nil {
		if err := a.mirror.Close(); err != nil {
			a.logger.Warn("mirror close error", zap.Error(err))
		}
	}
	if a.db != nil {
		a.db.Close()
		a.logger.Info("database connection closed")
	}
}
