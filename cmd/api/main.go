package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-shop-api/internal/auth"
	"github.com/ariefcatur/go-shop-api/internal/config"
	"github.com/ariefcatur/go-shop-api/internal/httpx"
	kafkax "github.com/ariefcatur/go-shop-api/internal/kafka"
	"github.com/ariefcatur/go-shop-api/internal/logger"
	"github.com/ariefcatur/go-shop-api/internal/postgres"
	"github.com/ariefcatur/go-shop-api/internal/redisx"
	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	lg, err := logger.New(cfg.LogLevel, cfg.ServiceName)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		lg.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		lg.Fatal("db migrate", zap.Error(err))
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer; its loop outlives ctx so buffered events are flushed on Close.
	prod := kafkax.NewProducer(cfg.KafkaBrokers, shop.TopicOrderSubmitted, 1024, lg)
	prod.Start(context.Background())

	// Repos & services
	users := &postgres.UserRepo{DB: db}
	carts := &postgres.CartRepo{DB: db}
	items := &redisx.ItemCache{Next: &postgres.ItemRepo{DB: db}, Redis: rdb, TTL: cfg.ItemCacheTTL, Log: lg}
	orders := &postgres.OrderRepo{DB: db}

	var tokens *auth.Tokens
	if cfg.JWTSecret != "" {
		tokens = auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	} else {
		lg.Warn("JWT_SECRET not set, authentication disabled")
	}

	router := httpx.NewRouter(lg)
	httpx.Handlers{
		Users: &httpx.UsersHandler{
			Service: &shop.UserService{Users: users, Carts: carts, Hasher: auth.BcryptHasher{Cost: cfg.BcryptCost}, Log: lg},
			Tokens:  tokens,
			Log:     lg,
		},
		Items: &httpx.ItemsHandler{Service: &shop.ItemService{Items: items, Log: lg}, Log: lg},
		Cart:  &httpx.CartHandler{Service: &shop.CartService{Users: users, Items: items, Carts: carts, Log: lg}, Log: lg},
		Orders: &httpx.OrdersHandler{
			Service: &shop.OrderService{Users: users, Carts: carts, Orders: orders, Publisher: prod, Service: cfg.ServiceName, Log: lg},
			Log:     lg,
		},
	}.Register(router, tokens, lg)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		lg.Error("server exit", zap.Error(err))
	}
	prod.Close()
	prod.WaitClosed()
}
