package app

import (
	"github.com/avc/purchase-ledger/internal/handlers"
	"github.com/avc/purchase-ledger/internal/metrics"
	"github.com/avc/purchase-ledger/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, corsOrigins []string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, corsOrigins, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, corsOrigins []string, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Authorization", "Content-Disposition", "Location", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Compress(5, "application/json"))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check и метрики
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)
	r.Handle("/metrics", metrics.Handler())

	// Публичные эндпоинты
	r.Post("/api/operators/register", deps.handlers.auth.Register)
	r.Post("/api/operators/login", deps.handlers.auth.Login)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Route("/api/purchases", func(r chi.Router) {
			r.Get("/", deps.handlers.purchases.List)
			r.Post("/", deps.handlers.purchases.Create)
			r.Get("/stats", deps.handlers.purchases.Stats)
			r.Get("/{id}", deps.handlers.purchases.Get)
			r.Patch("/{id}", deps.handlers.purchases.Update)
			r.Delete("/{id}", deps.handlers.purchases.Delete)
		})

		r.Get("/api/balance", deps.handlers.balance.GetBalance)
		r.Get("/api/balance/entries", deps.handlers.balance.ListEntries)
		r.Post("/api/balance/charges", deps.handlers.balance.AddCharge)

		r.Get("/api/export", deps.handlers.purchases.Export)
		r.Get("/api/events", deps.handlers.events.Stream)
	})
}
