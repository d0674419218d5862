package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/theo/arena-forge/internal/api"
	"github.com/theo/arena-forge/internal/config"
	"github.com/theo/arena-forge/internal/kv"
	"github.com/theo/arena-forge/internal/logger"
	"github.com/theo/arena-forge/internal/repository/kvstore"
	"github.com/theo/arena-forge/internal/service"
	"github.com/theo/arena-forge/internal/websocket"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "development")
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.LogLevel, cfg.Environment)

	var store kv.Store
	if cfg.RedisURL != "" {
		redisStore, err := kv.NewRedisStore(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisStore.Close()
		store = redisStore
		log.Info().Msg("using redis store")
	} else {
		store = kv.NewMemoryStore()
		log.Warn().Msg("REDIS_URL not set, using in-memory store; data is lost on restart")
	}

	repos := kvstore.NewRepositories(store)

	hub := websocket.NewHub(log)
	go hub.Run()

	services := service.NewServices(repos, log, hub)

	router := api.NewRouter(services, hub, store, cfg, log)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	hub.Stop()

	log.Info().Msg("server stopped")
}
