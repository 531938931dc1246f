// cmd/advisor-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cloud-advisor/internal/analyzer"
	"cloud-advisor/internal/api"
	"cloud-advisor/internal/audit"
	"cloud-advisor/internal/backend"
	"cloud-advisor/internal/common/config"
	"cloud-advisor/internal/common/database"
	"cloud-advisor/internal/common/logger"
	"cloud-advisor/internal/common/observability"
	"cloud-advisor/internal/provisioner"
	"cloud-advisor/internal/statusstore"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting advisor server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Status store ---
	var store statusstore.Store
	switch cfg.StatusStore.Backend {
	case "redis":
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()
		store = statusstore.NewRedisStore(redisClient, cfg.StatusStore.TTL)
		zapLog.Info("Redis status store connected")
	default:
		store = statusstore.NewMemoryStore()
	}

	// --- Audit recorder (optional) ---
	var recorder provisioner.AuditRecorder
	if cfg.Audit.Enabled {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		recorder = audit.NewRecorder(pg)
		zapLog.Info("PostgreSQL audit recorder connected")
	}

	// --- Core components ---
	simulator := backend.NewSimulator("", cfg.Provisioning.ResourceDelay, log)
	an := analyzer.New(log)
	executor := provisioner.NewExecutor(simulator, store, recorder, log, provisioner.Options{
		Concurrency:       cfg.Provisioning.Concurrency,
		BatchTimeout:      cfg.Provisioning.BatchTimeout,
		EstimatedDuration: time.Duration(cfg.Provisioning.EstimatedMinutes) * time.Minute,
	})

	server := api.NewServer(an, executor, store, simulator, obs, log, cfg.App.Version)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: server.Router(),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", cfg.Server.Addr()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
