// Package main is the entry point for the Payment System API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/payment-system/backend/config"
	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/application/usecase/payment"
	"github.com/payment-system/backend/internal/application/usecase/user"
	"github.com/payment-system/backend/internal/infra/db"
	"github.com/payment-system/backend/internal/infra/server/router"
	"github.com/payment-system/backend/internal/integration/adapters"
	"github.com/payment-system/backend/internal/integration/cache"
	"github.com/payment-system/backend/internal/integration/entrypoint/controller"
	"github.com/payment-system/backend/internal/integration/entrypoint/middleware"
	"github.com/payment-system/backend/internal/integration/persistence"
	"github.com/payment-system/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Payment System API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// The database is not optional; refuse to start without it.
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.PaymentCategoryModel{},
		&model.PaymentStatusModel{},
		&model.PaymentModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	if err := db.Seed(database.DB()); err != nil {
		slog.Error("Failed to seed reference data", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis is optional; without it the statistics report hits the
	// database on every request.
	var statisticsCache adapter.StatisticsCache
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Warn("Invalid Redis URL, statistics caching disabled", "error", err)
		} else {
			if cfg.Redis.Password != "" {
				opts.Password = cfg.Redis.Password
			}
			opts.DB = cfg.Redis.DB
			client := redis.NewClient(opts)

			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := client.Ping(pingCtx).Err(); err != nil {
				slog.Warn("Redis unreachable, statistics caching disabled", "error", err)
			} else {
				statisticsCache = cache.NewStatisticsCache(client, cfg.Redis.StatisticsTTL)
				slog.Info("Statistics cache initialized", "ttl", cfg.Redis.StatisticsTTL)
			}
			cancel()
		}
	}

	// Create repositories and adapters
	referenceGenerator := adapters.NewReferenceGenerator()
	passwordService := adapters.NewPasswordService()
	userRepo := persistence.NewUserRepository(database.DB())
	paymentRepo := persistence.NewPaymentRepository(database.DB(), referenceGenerator)

	// Create user use cases
	registerUserUseCase := user.NewRegisterUserUseCase(userRepo, passwordService)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	searchUsersUseCase := user.NewSearchUsersUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo)
	deactivateUserUseCase := user.NewDeactivateUserUseCase(userRepo)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)

	// Create payment use cases
	createPaymentUseCase := payment.NewCreatePaymentUseCase(paymentRepo)
	getPaymentUseCase := payment.NewGetPaymentUseCase(paymentRepo)
	listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo)
	updateStatusUseCase := payment.NewUpdatePaymentStatusUseCase(paymentRepo)
	cancelPaymentUseCase := payment.NewCancelPaymentUseCase(paymentRepo)
	statisticsUseCase := payment.NewCategoryStatisticsUseCase(paymentRepo, statisticsCache)
	totalByUserUseCase := payment.NewTotalByUserUseCase(paymentRepo)
	countByStatusUseCase := payment.NewCountByStatusUseCase(paymentRepo)

	// Create controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	userController := controller.NewUserController(
		registerUserUseCase,
		getUserUseCase,
		listUsersUseCase,
		searchUsersUseCase,
		updateUserUseCase,
		deactivateUserUseCase,
		deleteUserUseCase,
	)
	paymentController := controller.NewPaymentController(
		createPaymentUseCase,
		getPaymentUseCase,
		listPaymentsUseCase,
		updateStatusUseCase,
		cancelPaymentUseCase,
		statisticsUseCase,
		totalByUserUseCase,
		countByStatusUseCase,
	)
	writeRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)

	// Setup router
	r := router.NewRouter(healthController, userController, paymentController, writeRateLimiter)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
