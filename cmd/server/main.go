// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	allocationRouter "github.com/festy23/judging_rounds/internal/allocation/router"
	"github.com/festy23/judging_rounds/internal/config"
	criterionRouter "github.com/festy23/judging_rounds/internal/criterion/router"
	"github.com/festy23/judging_rounds/internal/database/database"
	"github.com/festy23/judging_rounds/internal/database/migrate"
	"github.com/festy23/judging_rounds/internal/health"
	"github.com/festy23/judging_rounds/internal/metrics"
	"github.com/festy23/judging_rounds/internal/middleware"
	participationRouter "github.com/festy23/judging_rounds/internal/participation/router"
	roundRouter "github.com/festy23/judging_rounds/internal/round/router"
	scoreRouter "github.com/festy23/judging_rounds/internal/score/router"
	statisticsRouter "github.com/festy23/judging_rounds/internal/statistics/router"
	summaryRouter "github.com/festy23/judging_rounds/internal/summary/router"
	teamRouter "github.com/festy23/judging_rounds/internal/team/router"
	userRouter "github.com/festy23/judging_rounds/internal/user/router"
	"github.com/festy23/judging_rounds/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run() error {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = sugar.Sync() }()

	db, err := database.New()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			sugar.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	sugar.Infow("migrations applied", "driver", db.Dialector.Name())

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(prometheus.DefaultRegisterer)
	}

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      newRouter(cfg, db, m, sugar),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		sugar.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	sugar.Infow("shutting down", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx := context.Background()
	if cfg.Server.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, cfg.Server.ShutdownTimeout)
		defer cancel()
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	sugar.Infow("server stopped")
	return nil
}

// newRouter wires middleware and every module's routes. m may be nil.
func newRouter(cfg config.Config, db *gorm.DB, m *metrics.Metrics, sugar *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(sugar))
	r.Use(middleware.Recovery(sugar))
	if m != nil {
		r.Use(middleware.Metrics(m))
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/health", health.New(db, sugar).Check)

	roundRouter.RegisterRoutes(r, db, cfg.Round, sugar)
	teamRouter.RegisterRoutes(r, db, sugar)
	userRouter.RegisterRoutes(r, db, sugar)
	participationRouter.RegisterRoutes(r, db, sugar)
	criterionRouter.RegisterRoutes(r, db, sugar)
	allocationRouter.RegisterRoutes(r, db, m, sugar)
	scoreRouter.RegisterRoutes(r, db, sugar)
	summaryRouter.RegisterRoutes(r, db, sugar)
	statisticsRouter.RegisterRoutes(r, db, sugar)

	return r
}
