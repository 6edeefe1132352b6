package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pisos-tracker/internal/api"
	"pisos-tracker/internal/common"
	"pisos-tracker/internal/config"
	"pisos-tracker/internal/db"
	"pisos-tracker/internal/logging"
	"pisos-tracker/internal/metrics"
	"pisos-tracker/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Pisos tracker starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.Database.Driver,
		"flash_backend", cfg.Flash.Backend,
		"timestamp", time.Now().Format(time.RFC3339),
	)
	if cfg.UsesDevFlashSecret() {
		logging.Warn("FLASH_SECRET not set, flash cookies are signed with the development key")
	}

	orm, err := db.OpenORM(cfg.Database)
	if err != nil {
		logging.Fatal("Failed to open database (GORM)", "error", err.Error())
	}
	sqlxDB, err := db.OpenSQLX(cfg.Database, orm)
	if err != nil {
		logging.Fatal("Failed to open database (sqlx)", "error", err.Error())
	}
	defer func() {
		if sqlDB, err := orm.DB(); err == nil && sqlDB != sqlxDB.DB {
			sqlDB.Close()
		}
		sqlxDB.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.EnsureSchema(ctx, orm); err != nil {
		logging.Fatal("Failed to ensure schema", "error", err.Error())
	}
	logging.Info("Schema ready", "table", "pisos")

	metricsReg := metrics.NewMetricsRegistry()

	flash, err := common.NewFlashStore(cfg)
	if err != nil {
		logging.Fatal("Failed to create flash store", "error", err.Error())
	}

	deps, err := api.InitDependencies(orm, sqlxDB, flash, metricsReg)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}

	router := routes.RegisterRoutes(cfg, deps)

	// metrics endpoint lives outside the chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", metricsReg.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server stopped with error", "error", err.Error())
		os.Exit(1)
	}
	logging.Info("Server stopped")
}
