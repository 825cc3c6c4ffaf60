package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ariefcatur/go-shop-api/internal/config"
	kafkax "github.com/ariefcatur/go-shop-api/internal/kafka"
	"github.com/ariefcatur/go-shop-api/internal/logger"
	"github.com/ariefcatur/go-shop-api/internal/orderlog"
	"github.com/ariefcatur/go-shop-api/internal/redisx"
	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	name := cfg.ServiceName + "-orderlog"
	lg, err := logger.New(cfg.LogLevel, name)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &orderlog.Service{Redis: rdb, Log: lg, ServiceName: name}
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.OrderLogGroup, shop.TopicOrderSubmitted, cfg.OrderLogWorkers, lg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("orderlog consumer started",
			zap.String("group", cfg.OrderLogGroup),
			zap.String("topic", shop.TopicOrderSubmitted),
			zap.Int("workers", cfg.OrderLogWorkers))
		return cons.Start(gctx, svc.HandleOrderSubmitted)
	})

	if err := g.Wait(); err != nil {
		lg.Error("consumer exit", zap.Error(err))
	}
	lg.Info("orderlog stopped")
}
