package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/backup"
	"github.com/BruksfildServices01/reservation-api/internal/config"
	"github.com/BruksfildServices01/reservation-api/internal/db"
	"github.com/BruksfildServices01/reservation-api/internal/handlers"
	"github.com/BruksfildServices01/reservation-api/internal/infra/repository"
	"github.com/BruksfildServices01/reservation-api/internal/logging"
	"github.com/BruksfildServices01/reservation-api/internal/middleware"
	"github.com/BruksfildServices01/reservation-api/internal/routes"
)

func main() {
	log := logging.New("reservation-api")

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	store := repository.NewReservationFileStore(cfg.DataPath)
	store.SyncWrite = cfg.StoreSync
	if err := store.EnsureInitialized(); err != nil {
		// not fatal: every append retries the initialization
		log.Error("store initialization failed", "err", err, "path", cfg.DataPath)
	}

	var sink audit.Sink = audit.New(log)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		gdb, err := db.NewDB(cfg)
		if err != nil {
			log.Error("audit database setup failed", "err", err)
			os.Exit(1)
		}
		if sqlDB, err = gdb.DB(); err != nil {
			log.Error("audit database setup failed", "err", err)
			os.Exit(1)
		}
		sink = audit.NewGormSink(gdb)
	}
	auditDispatcher := audit.NewDispatcher(sink, log)

	deps := routes.Deps{
		Store: store,
		Audit: auditDispatcher,
		Log:   log,
		Checks: []handlers.ReadyCheck{{
			Name: "store",
			Check: func(context.Context) error {
				_, err := os.Stat(filepath.Dir(store.Path()))
				return err
			},
		}},
	}

	if sqlDB != nil {
		deps.Checks = append(deps.Checks, handlers.ReadyCheck{
			Name:  "database",
			Check: sqlDB.PingContext,
		})
	}

	var rdb *redis.Client
	if cfg.RateLimitPerMinute > 0 {
		if cfg.RedisURL != "" {
			opts, err := redis.ParseURL(cfg.RedisURL)
			if err != nil {
				log.Error("invalid REDIS_URL", "err", err)
				os.Exit(1)
			}
			rdb = redis.NewClient(opts)
			deps.Limiter = middleware.NewRedisRateLimiter(rdb, cfg.RateLimitPerMinute, routes.RateLimitWindow, "reservations:rl")
			deps.Checks = append(deps.Checks, handlers.ReadyCheck{
				Name:  "redis",
				Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			})
		} else {
			deps.Limiter = middleware.NewMemoryRateLimiter(cfg.RateLimitPerMinute, routes.RateLimitWindow)
		}
	}

	if cfg.Backup.Enabled() {
		uploader, err := backup.NewS3Uploader(cfg.Backup)
		if err != nil {
			log.Error("backup setup failed", "err", err)
			os.Exit(1)
		}
		deps.Uploader = uploader
	}

	if !cfg.AdminEnabled() {
		log.Warn("ADMIN_KEY is not set, admin endpoints will refuse every request")
	}

	r := routes.NewRouter(cfg, deps)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "data_path", cfg.DataPath, "gin_mode", gin.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "err", err)
	}

	auditDispatcher.Close()
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB != nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
