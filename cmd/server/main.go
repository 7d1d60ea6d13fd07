package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fruitmart/shop-api/internal/api"
	"github.com/fruitmart/shop-api/internal/core/ports"
	"github.com/fruitmart/shop-api/internal/infrastructure/config"
	mongostore "github.com/fruitmart/shop-api/internal/infrastructure/db/mongo"
	redisstore "github.com/fruitmart/shop-api/internal/infrastructure/db/redis"
	"github.com/fruitmart/shop-api/internal/infrastructure/memory"
	"github.com/fruitmart/shop-api/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	memberRepo := mongostore.NewMemberRepository(db)
	if err := memberRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("member index creation failed")
	}

	var (
		cartStore ports.CartStore
		rdb       *goredis.Client
	)
	switch cfg.CartStore {
	case "redis":
		rdb, err = redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		cartStore = redisstore.NewCartStore(rdb, cfg.CartTTL)
	default:
		cartStore = memory.NewCartStore()
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("cart_store", cfg.CartStore).
		Msg("starting shop api")

	e := api.NewRouter(db, rdb, cartStore, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
