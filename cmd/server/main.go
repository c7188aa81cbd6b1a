package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"auto-pana/garaje/internal/common"
	"auto-pana/garaje/internal/config"
	"auto-pana/garaje/internal/db"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/metrics"
	"auto-pana/garaje/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// A missing .env file is fine, the environment wins anyway.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("garaje sync server starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	gormDB, err := db.InitORM(cfg)
	if err != nil {
		logging.Error("failed to open database (GORM)", "error", err.Error())
		log.Fatalf("failed to open database (GORM): %v", err)
	}

	sqlxDB, err := db.InitSQLX(cfg)
	if err != nil {
		logging.Error("failed to open database (sqlx)", "error", err.Error())
		log.Fatalf("failed to open database (sqlx): %v", err)
	}
	defer sqlxDB.Close()

	cache := newCache(cfg)
	defer cache.Close()

	metricsReg := metrics.NewMetricsRegistry()
	upSince := time.Now()

	router := routes.RegisterRoutes(cfg, sqlxDB, gormDB, cache, metricsReg, upSince)

	// Metrics live outside the chi router so they skip its middleware.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("server exited with error", "error", err.Error())
		log.Fatalf("server exited with error: %v", err)
	}
	logging.Info("server stopped")
}

func newCache(cfg config.Config) common.CacheInterface {
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err == nil {
			logging.Info("using Redis cache", "host", cfg.RedisHost, "port", cfg.RedisPort)
			return redisCache
		}
		logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
	}
	return common.NewCacheService(cfg.StatsCacheTTLSeconds, 2*cfg.StatsCacheTTLSeconds)
}
