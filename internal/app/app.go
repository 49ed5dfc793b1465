package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/purchase-ledger/internal/config"
	"github.com/avc/purchase-ledger/internal/repository/sqlite"
	"github.com/avc/purchase-ledger/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const memoryMirror = ":memory:"

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	redis      *redis.Client
	mirror     *sqlite.Mirror
	router     *chi.Mux
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	a := &App{config: cfg, logger: logger}

	// Инициализация основного хранилища
	if cfg.UsesMemoryStore() {
		logger.Warn("using in-memory stores, data is lost on restart")
	} else {
		a.db, err = initDatabase(ctx, cfg.DatabaseURI, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to database")
	}

	// Локальное зеркало для чтения при недоступности основного хранилища
	mirrorPath := cfg.MirrorPath
	if mirrorPath == "" {
		mirrorPath = memoryMirror
	}
	a.mirror, err = sqlite.New(mirrorPath)
	if err != nil {
		a.closeResources()
		return nil, err
	}
	logger.Info("mirror opened", zap.String("path", mirrorPath))

	// Redis для распределенных блокировок и ленты событий
	a.redis, err = initRedis(ctx, cfg.RedisAddress)
	if err != nil {
		a.closeResources()
		return nil, err
	}
	if a.redis != nil {
		logger.Info("connected to redis", zap.String("address", cfg.RedisAddress))
	}

	// Инициализация зависимостей
	deps := initDependencies(cfg, a.db, a.redis, a.mirror, logger)

	// Настройка роутера
	a.router = setupRouter(deps, deps.jwtManager, cfg.CORSOrigins, logger)
	a.workerPool = deps.workerPool

	// Создание HTTP сервера
	a.server = createServer(cfg.RunAddress, a.router)

	return a, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск worker pool
	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started", zap.Strings("systems", a.config.Systems))

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return nil
}
