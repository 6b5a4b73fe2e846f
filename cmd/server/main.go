package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"realestate/internal/catalog/handler"
	catalogmetrics "realestate/internal/catalog/metrics"
	"realestate/internal/catalog/service"
	"realestate/internal/catalog/store/mongostore"
	"realestate/internal/platform/config"
	"realestate/internal/platform/httpserver"
	"realestate/internal/platform/logger"
	"realestate/internal/platform/metrics"
	"realestate/internal/platform/mongodb"
	httptransport "realestate/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	configPath := flag.String("config", ".", "directory containing an optional config.yaml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Close(closeCtx); err != nil {
			log.Warn("failed to close mongodb client", "error", err)
		}
	}()

	store := mongostore.New(client.Database(), mongostore.WithLogger(log))
	store.EnsureIndexes(ctx)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := service.New(store.Properties,
		service.WithLogger(log),
		service.WithMetrics(catalogmetrics.New(reg)),
	)
	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Health:         client,
	}, handler.New(service.NewQueries(svc), log))

	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.RequestTimeout+5*time.Second)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting realestate catalog", "addr", cfg.Server.Addr, "database", cfg.Mongo.Database)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
