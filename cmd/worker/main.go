package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/deskbuddy/config"
	"github.com/Domenick1991/deskbuddy/internal/kafka"
	"github.com/Domenick1991/deskbuddy/internal/notify"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if len(cfg.Kafka.Brokers) == 0 {
		logger.Error("worker needs kafka.brokers")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := notify.NewSender(logger)
	logger.Info("worker started",
		slog.String("topic", cfg.Kafka.NotificationsTopic),
		slog.String("group_id", cfg.Kafka.GroupID),
	)

	if err := consumer.Consume(ctx, kafka.BookingEventHandler(logger, sender.Send)); err != nil && ctx.Err() == nil {
		logger.Error("consumer stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}
