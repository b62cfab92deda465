package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/Domenick1991/deskbuddy/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// newGRPCServer serves the standard grpc.health.v1 service. The overall
// status is registered under the empty service name and each dependency
// under its health check name.
func newGRPCServer(checks []api.HealthCheck) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	for _, check := range checks {
		healthSrv.SetServingStatus(check.Name, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	healthpb.RegisterHealthServer(srv, healthSrv)
	reflection.Register(srv)
	return srv, healthSrv
}

// refreshHealth runs every check once and publishes the result.
func refreshHealth(ctx context.Context, healthSrv *health.Server, checks []api.HealthCheck, logger *slog.Logger) {
	overall := healthpb.HealthCheckResponse_SERVING
	for _, check := range checks {
		status := healthpb.HealthCheckResponse_SERVING
		if err := check.Check(ctx); err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
			logger.Warn("health check failed", slog.String("check", check.Name), slog.String("error", err.Error()))
		}
		healthSrv.SetServingStatus(check.Name, status)
	}
	healthSrv.SetServingStatus("", overall)
}

// watchHealth refreshes the health service every interval until ctx ends.
func watchHealth(ctx context.Context, healthSrv *health.Server, checks []api.HealthCheck, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		refreshHealth(checkCtx, healthSrv, checks, logger)
		cancel()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
