package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpLayer "loan-cost/http"
	"loan-cost/repository"
	"loan-cost/service"
)

const cacheTTL = 15 * time.Minute

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	var cache repository.CacheRepository
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		cache = repository.NewRedisCache(redisAddr, cacheTTL)
		logger.Info("using redis cache", zap.String("addr", redisAddr))
	} else {
		cache = repository.NewMemoryCache()
		logger.Info("using in-process cache")
	}

	repo := repository.NewCalculationRepositoryMemory()

	scheduleService := service.NewScheduleService(repo, cache, logger)
	scheduleHandler := httpLayer.NewScheduleHandler(scheduleService)

	quoteService := service.NewQuoteService(repo, logger)
	quoteHandler := httpLayer.NewQuoteHandler(quoteService)

	ratesService := service.NewRatesService(logger)
	ratesHandler := httpLayer.NewRatesHandler(ratesService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(scheduleHandler.BuildSchedule),
		),
	)
	mux.Handle(
		"/loan/quote",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(quoteHandler.Quote),
		),
	)
	mux.Handle(
		"/loan/rates",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(ratesHandler.Rates),
		),
	)

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("loan cost engine listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("server exited")
}
