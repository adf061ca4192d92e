package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/leaguecentral/stats-api/internal/cache"
	"github.com/leaguecentral/stats-api/internal/config"
	"github.com/leaguecentral/stats-api/internal/handlers"
	"github.com/leaguecentral/stats-api/internal/logic"
	"github.com/leaguecentral/stats-api/internal/sleeper"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	port := sleeper.NewClient(sleeper.Config{
		BaseURL: cfg.SleeperBaseURL,
		Timeout: cfg.FetchTimeout,
		Logger:  logger,
	})

	var (
		chainCache  logic.ChainCache
		configStore handlers.ConfigStore
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid REDIS_URL", "error", err)
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			sugar.Fatalw("Redis unreachable", "error", err)
		}
		chainCache = cache.NewRedisChainCache(rdb, cfg.ChainCacheTTL, logger)
		configStore = cache.NewRedisConfigStore(rdb, cfg.DefaultLeagueID)
		sugar.Infow("Using Redis chain cache", "ttl", cfg.ChainCacheTTL)
	} else {
		chainCache = cache.NewMemoryChainCache(cfg.ChainCacheTTL)
		configStore = cache.NewMemoryConfigStore(cfg.DefaultLeagueID)
	}

	chainSvc := logic.NewChainService(port, chainCache, logger, cfg.MaxChainDepth)
	aggregationSvc := logic.NewAggregationService(port, chainSvc, logger, cfg.LegacyChampionshipHeuristic)
	metricsSvc := logic.NewMetricsService(port, chainSvc, logger)

	h := handlers.New(handlers.Config{
		Port:        port,
		ConfigStore: configStore,
		Logger:      logger,
		Chain:       chainSvc,
		Aggregation: aggregationSvc,
		TeamMetrics: metricsSvc,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Routes(cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		sugar.Infow("API listening", "port", cfg.Port, "env", cfg.Env, "league_id", cfg.DefaultLeagueID)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Shutdown error", "error", err)
	}
}
