package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"lpclass_backend/internal/app/di"
	"lpclass_backend/internal/app/router"
	estimatorhandler "lpclass_backend/internal/feature/estimator/transport/handler"
	estimatorusecase "lpclass_backend/internal/feature/estimator/usecase"
	pairshandler "lpclass_backend/internal/feature/pairs/transport/handler"
	pairsusecase "lpclass_backend/internal/feature/pairs/usecase"
	"lpclass_backend/internal/platform/externalapi/dexscreener"
	platformhandler "lpclass_backend/internal/platform/http/handler"
	"lpclass_backend/internal/platform/metrics"
	infraredis "lpclass_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.NewRegistry()

	// Redis
	var rdb *redisv9.Client
	var ping platformhandler.PingFunc
	if cfg := infraredis.LoadConfig(); cfg.Addr == "" {
		log.Println("[INFO] REDIS_HOST not set. Using in-process cache.")
	} else if tmp, err := infraredis.NewRedisClient(ctx, cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Using in-process cache.")
	} else {
		rdb = tmp
		ping = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	dexCfg := dexscreener.LoadConfig()
	market := di.NewMarket(dexCfg, m)
	pairRepo := di.NewPairRepository(rdb, envDuration("PAIRS_CACHE_TTL", 0), market, m)

	// Usecase
	var bounds *estimatorusecase.Bounds
	if envBool("ESTIMATOR_CLAMP", true) {
		b := estimatorusecase.SliderBounds
		bounds = &b
	}
	estimatorUC := estimatorusecase.NewEstimatorUsecase(bounds)
	pairsUC := pairsusecase.NewPairsUsecase(pairRepo, dexCfg.Chain, pairsusecase.DefaultTopN)

	// Handler
	healthH := platformhandler.NewHealthHandler(pairRepo, ping)
	estimateH := estimatorhandler.NewEstimateHandler(estimatorUC)
	pairsH := pairshandler.NewPairsHandler(pairsUC)

	// ルータ生成
	r := router.NewRouter(healthH, estimateH, pairsH, m)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "chain", dexCfg.Chain, "cache", pairRepo.Backend())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
