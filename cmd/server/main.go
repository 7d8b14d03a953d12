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
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"jamii-hub/mtaani/internal/config"
	"jamii-hub/mtaani/internal/db"
	"jamii-hub/mtaani/internal/logging"
	"jamii-hub/mtaani/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Mtaani starting up",
		"environment", cfg.AppEnv,
		"store_backend", cfg.Store.Backend,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if cfg.Store.Backend != "memory" {
		dsn := cfg.Database.DSN()

		if err := db.InitPostgres(dsn); err != nil {
			logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
			log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
		}
		logging.Info("Connected to Postgres (sqlx)")

		if _, err := db.InitORM("postgres", dsn); err != nil {
			logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
			log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
		}
		logging.Info("Connected to Postgres (GORM)")
	}

	upSince := time.Now()

	router, err := routes.RegisterRoutes(cfg, upSince)
	if err != nil {
		logging.Error("Failed to initialize router", "error", err.Error())
		log.Fatalf("Failed to initialize router: %v", err)
	}

	// Metrics endpoint lives outside the chi router.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server starting", "port", cfg.Server.Port, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logging.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
