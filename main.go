package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rental-agent/config"
	httpLayer "rental-agent/http"
	"rental-agent/logger"
	"rental-agent/repository"
	"rental-agent/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalw("failed to load configuration", "error", err)
	}

	logger.Init(cfg.Environment)
	defer logger.Sync()
	log := logger.Get()
	for _, warning := range cfg.Warnings {
		log.Warn(warning)
	}

	assumptions, err := config.LoadAssumptions(cfg.AssumptionsFile)
	if err != nil {
		log.Warnw("using default assumptions", "file", cfg.AssumptionsFile, "error", err)
	}

	var cache repository.CacheRepository
	var memoryCache *repository.MockCache
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		defer redisCache.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warnw("redis unreachable, results will not be cached until it recovers", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
		cache = redisCache
	} else {
		memoryCache = repository.NewMockCache(cfg.CacheTTL)
		cache = memoryCache
	}

	var simulationRepo repository.SimulationRepository
	if cfg.DBPath != "" {
		db, err := repository.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatalw("failed to open history database", "path", cfg.DBPath, "error", err)
		}
		gormRepo, err := repository.NewSimulationRepositoryGorm(db)
		if err != nil {
			log.Fatalw("failed to prepare history database", "path", cfg.DBPath, "error", err)
		}
		defer gormRepo.Close()
		simulationRepo = gormRepo
	} else {
		simulationRepo = repository.NewSimulationRepositoryMemory()
	}

	advisor := service.NewAdvisorService(cfg.OpenAIAPIKey)
	loanService := service.NewLoanService(simulationRepo, cache)
	simulationService := service.NewSimulationService(simulationRepo, cache, assumptions, advisor)

	loanHandler := httpLayer.NewLoanHandler(loanService)
	simulationHandler := httpLayer.NewSimulationHandler(simulationService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(loanHandler, simulationHandler, rateLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "addr", server.Addr, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Errorw("error starting server", "error", err)
		return
	case <-quit:
		log.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("error during server shutdown", "error", err)
	}

	if memoryCache != nil {
		hits, misses := memoryCache.Stats()
		log.Infow("in-memory cache usage", "hits", hits, "misses", misses)
	}
	log.Info("server exited")
}
