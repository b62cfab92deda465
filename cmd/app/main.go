package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/deskbuddy/api"
	"github.com/Domenick1991/deskbuddy/config"
	"github.com/Domenick1991/deskbuddy/internal/bootstrap"
	"github.com/Domenick1991/deskbuddy/internal/cache"
	"github.com/Domenick1991/deskbuddy/internal/kafka"
	"github.com/Domenick1991/deskbuddy/internal/repository"
	"github.com/Domenick1991/deskbuddy/internal/seed"
	"github.com/Domenick1991/deskbuddy/internal/service/dashboard"
	"github.com/Domenick1991/deskbuddy/internal/service/floorplan"
	"github.com/jackc/pgx/v5/pgxpool"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		source       dashboard.DeskSource    = seed.NewStatic()
		viewports    floorplan.ViewportStore = floorplan.NewMemoryStore(cfg.FloorPlanSessionTTL())
		healthChecks []api.HealthCheck
	)
	dashOpts := []dashboard.DashboardServiceOption{
		dashboard.WithLogger(logger),
		dashboard.WithLocation(cfg.Location()),
	}

	if cfg.Seed.Source == config.SeedSourcePostgres {
		if cfg.Seed.Migrations != "" {
			if err := repository.Migrate(cfg.Database.DSN(), cfg.Seed.Migrations, logger); err != nil {
				logger.Error("migrate database", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			logger.Error("connect postgres", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		source = repository.NewDeskRepository(pool)
		healthChecks = append(healthChecks, api.HealthCheck{Name: "postgres", Check: pool.Ping})
	}

	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.DesksCacheTTL(), cfg.FloorPlanSessionTTL())
		defer redisCache.Close()
		dashOpts = append(dashOpts, dashboard.WithCache(redisCache))
		viewports = redisCache
		healthChecks = append(healthChecks, api.HealthCheck{Name: "redis", Check: redisCache.Ping})
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logger)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			logger.Warn("kafka unavailable, events may be lost", slog.String("error", err.Error()))
		}
		dashOpts = append(dashOpts,
			dashboard.WithProducer(producer, cfg.Kafka.BookingEventsTopic),
			dashboard.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
		healthChecks = append(healthChecks, api.HealthCheck{Name: "kafka", Check: producer.CheckConnection})
	}

	dashboardService := dashboard.NewDashboardService(source, dashOpts...)
	floorPlanService := floorplan.NewFloorPlanService(dashboardService, viewports, logger)

	if err := bootstrap.Run(ctx, cfg, logger, bootstrap.Services{
		Dashboard:    dashboardService,
		FloorPlan:    floorPlanService,
		HealthChecks: healthChecks,
	}); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
