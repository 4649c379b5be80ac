package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-list-service/internal/adapters/primary/http/handlers"
	"todo-list-service/internal/adapters/primary/http/middleware"
	"todo-list-service/internal/adapters/secondary/filesystem"
	"todo-list-service/internal/adapters/secondary/memcached"
	"todo-list-service/internal/adapters/secondary/postgres"
	"todo-list-service/internal/config"
	ports "todo-list-service/internal/core/ports/output"
	"todo-list-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Cache client. The readiness gate runs before this process starts, so a
	// failed ping here is only logged.
	cache := memcached.NewClient(&cfg.Memcached)
	if err := cache.Ping(); err != nil {
		log.WithError(err).Warnf("memcached at %s not answering yet", cfg.Memcached.Addr())
	} else {
		log.Infof("memcached connection established (%s)", cfg.Memcached.Addr())
	}

	// Backup store
	backupStore, closeStore, err := newBackupStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("backup store: %v", err)
	}
	defer closeStore()

	// Secondary adapters
	listRepo := memcached.NewTaskListRepository(cache)
	taskRepo := memcached.NewTaskRepository(cache)

	// Core services
	listSvc := services.NewTaskListService(listRepo, taskRepo)
	taskSvc := services.NewTaskService(listRepo, taskRepo)
	backupSvc := services.NewBackupService(listRepo, listSvc, backupStore)

	// Primary adapter
	h := handlers.New(listSvc, taskSvc, backupSvc, listRepo)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	h.RegisterRoutes(router.Group("/"))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func newBackupStore(ctx context.Context, cfg *config.Config) (ports.BackupStore, func(), error) {
	if cfg.Backup.Driver != config.BackupDriverPostgres {
		log.Infof("backups written to %s", cfg.Backup.Dir)
		return filesystem.NewBackupStore(afero.NewOsFs(), cfg.Backup.Dir), func() {}, nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping db: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	log.Info("backups written to postgres")
	return postgres.NewBackupRepository(pool), pool.Close, nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
