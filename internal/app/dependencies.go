package app

import (
	"github.com/avc/purchase-ledger/internal/config"
	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/avc/purchase-ledger/internal/handlers"
	"github.com/avc/purchase-ledger/internal/lock"
	"github.com/avc/purchase-ledger/internal/realtime"
	"github.com/avc/purchase-ledger/internal/repository/cached"
	"github.com/avc/purchase-ledger/internal/repository/memory"
	"github.com/avc/purchase-ledger/internal/repository/postgres"
	"github.com/avc/purchase-ledger/internal/repository/sqlite"
	"github.com/avc/purchase-ledger/internal/service"
	"github.com/avc/purchase-ledger/internal/utils/jwt"
	"github.com/avc/purchase-ledger/internal/utils/password"
	"github.com/avc/purchase-ledger/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// repositories содержит все хранилища приложения
type repositories struct {
	operator domain.OperatorRepository
	ledger   domain.LedgerStore
	purchase domain.PurchaseStore
	status   *cached.Status
	syncer   *cached.Syncer
}

// services содержит все сервисы приложения
type services struct {
	auth     domain.AuthService
	purchase domain.PurchaseService
	balance  domain.BalanceService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth      *handlers.AuthHandler
	purchases *handlers.PurchasesHandler
	balance   *handlers.BalanceHandler
	events    *handlers.EventsHandler
	health    *handlers.HealthHandler
}

// feed объединяет публикацию и подписку на события изменений
type feed interface {
	domain.ChangePublisher
	domain.ChangeSubscriber
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initRepositories выбирает основное хранилище и оборачивает его зеркалом.
// dbPool == nil означает хранилища в памяти.
func initRepositories(dbPool *pgxpool.Pool, mirror *sqlite.Mirror, logger *zap.Logger) *repositories {
	var (
		operators domain.OperatorRepository
		ledger    domain.LedgerStore
		purchases domain.PurchaseStore
	)
	if dbPool != nil {
		operators = postgres.NewOperatorRepository(dbPool)
		ledger = postgres.NewLedgerRepository(dbPool)
		purchases = postgres.NewPurchaseRepository(dbPool)
	} else {
		operators = memory.NewOperators()
		ledger = memory.NewLedger()
		purchases = memory.NewPurchases()
	}

	status := cached.NewStatus(logger)
	return &repositories{
		operator: operators,
		ledger:   cached.NewLedger(ledger, mirror, status, logger),
		purchase: cached.NewPurchases(purchases, mirror, status, logger),
		status:   status,
		// Снимок строится из основного хранилища, а не из обертки с зеркалом
		syncer: cached.NewSyncer(ledger, purchases, mirror, status),
	}
}

// initDependencies создает все зависимости приложения
func initDependencies(
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	redisClient *redis.Client,
	mirror *sqlite.Mirror,
	logger *zap.Logger,
) *dependencies {
	repos := initRepositories(dbPool, mirror, logger)

	// Блокировки и лента событий работают через Redis, если он настроен
	var (
		locker  domain.ScopeLocker
		changes feed
	)
	if redisClient != nil {
		locker = lock.NewRedis(redisClient, cfg.LockTTL, logger)
		changes = realtime.NewRedisFeed(redisClient, logger)
	} else {
		locker = lock.NewLocal()
		changes = realtime.NewHub()
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(0)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Создание сервисов
	svcs := &services{
		auth:     service.NewAuthService(repos.operator, passwordHasher, jwtManager, cfg.Systems),
		purchase: service.NewPurchaseService(repos.purchase, repos.ledger, locker, changes, logger),
		balance:  service.NewBalanceService(repos.ledger, changes, repos.status, logger),
	}

	// Без пула проверка базы данных не выполняется
	var pinger handlers.Pinger
	if dbPool != nil {
		pinger = dbPool
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:      handlers.NewAuthHandler(svcs.auth, logger),
		purchases: handlers.NewPurchasesHandler(svcs.purchase, logger),
		balance:   handlers.NewBalanceHandler(svcs.balance, logger),
		events:    handlers.NewEventsHandler(changes, logger),
		health:    handlers.NewHealthHandler(pinger, repos.status, mirror, cfg.Systems, logger),
	}

	workerPool := worker.NewPool(cfg.WorkerPoolSize, cfg.Systems, repos.syncer, cfg.WorkerScanInterval, logger)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
