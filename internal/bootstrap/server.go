package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/deskbuddy/api"
	"github.com/Domenick1991/deskbuddy/config"
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/Domenick1991/deskbuddy/internal/middleware"
	"github.com/Domenick1991/deskbuddy/internal/service/dashboard"
	"github.com/Domenick1991/deskbuddy/internal/service/floorplan"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

const swaggerDocument = "deskbuddy.swagger.json"

type Services struct {
	Dashboard    dashboard.DashboardUseCase
	FloorPlan    floorplan.FloorPlanUseCase
	HealthChecks []api.HealthCheck
}

// Run starts the HTTP server and, when an address is configured, the gRPC
// health server. It blocks until context is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, services Services) error {
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           NewRouter(cfg, logger, services),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)

	var grpcSrv *grpc.Server
	if cfg.GRPC.Address != "" {
		lis, err := net.Listen("tcp", cfg.GRPC.Address)
		if err != nil {
			return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
		}
		var healthSrv *health.Server
		grpcSrv, healthSrv = newGRPCServer(services.HealthChecks)
		go watchHealth(ctx, healthSrv, services.HealthChecks, cfg.GRPCHealthInterval(), logger)
		go func() {
			logger.Info("grpc server starting", slog.String("address", cfg.GRPC.Address))
			if err := grpcSrv.Serve(lis); err != nil {
				errCh <- fmt.Errorf("serve gRPC: %w", err)
			}
		}()
		defer healthSrv.Shutdown()
	}

	go func() {
		logger.Info("http server starting", slog.String("address", cfg.HTTP.Address))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if grpcSrv != nil {
			grpcSrv.Stop()
		}
		_ = httpSrv.Close()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if grpcSrv != nil {
			grpcSrv.GracefulStop()
		}
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("servers stopped")
		return nil
	}
}

func NewRouter(cfg *config.Config, logger *slog.Logger, services Services) *gin.Engine {
	gin.SetMode(cfg.HTTP.Mode)

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())
	if c, ok := corsConfig(cfg.HTTP.AllowedOrigins); ok {
		router.Use(cors.New(c))
	}

	api.NewHealthHandler(services.HealthChecks...).Register(router)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.CurrentUser(domain.User{
		ID:   cfg.Booking.DefaultUserID,
		Name: cfg.Booking.DefaultUserName,
	}))
	api.NewDeskHandler(services.Dashboard).Register(v1.Group("/desks"))
	api.NewBookingHandler(services.Dashboard, cfg.Location()).Register(v1)
	api.NewFloorPlanHandler(services.FloorPlan).Register(v1.Group("/floorplan"))

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/"+swaggerDocument),
		)))
	}

	return router
}

// corsConfig returns false when no origin is allowed; "*" allows all.
func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.UserIDHeader, middleware.UserNameHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c, true
		}
	}
	c.AllowOrigins = origins
	return c, true
}
