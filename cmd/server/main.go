package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"transport-data-service/internal/app"
	"transport-data-service/internal/infrastructure/config"
	"transport-data-service/pkg/logger"
	"transport-data-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Transport Data Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	profile, err := cfg.ProfileByName(cfg.ActiveProfile)
	if err != nil {
		log.Fatal("Failed to resolve database profile", "error", err)
	}
	log.Info("Using database profile", "profile", profile.Name)

	// The flat client records live in a separate database on the same server
	recordsProfile := profile.WithDBName(cfg.RecordsDBName)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("transportdb", prometheus.DefaultRegisterer)

	// Connect both access paths and ensure both schemas
	application, err := app.New(ctx, profile, recordsProfile, log, m)
	if err != nil {
		log.Fatal("Failed to initialize data access layer", "error", err)
	}
	defer application.Close()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("Metrics server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Metrics server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down")
	server.Shutdown(ctx)
}
