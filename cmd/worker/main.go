package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskflowhq/taskflow/internal/config"
	"github.com/taskflowhq/taskflow/internal/notifications"
	"github.com/taskflowhq/taskflow/internal/observability"
	"github.com/taskflowhq/taskflow/internal/queue/redisclient"
	"github.com/taskflowhq/taskflow/internal/queue/worker"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env, "taskflow-worker")

	if cfg.RedisAddr == "" {
		log.Error("REDIS_ADDR is required for the worker")
		os.Exit(1)
	}

	rdb := redisclient.New(redisclient.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	reg := prometheus.NewRegistry()
	metrics := observability.NewProm(reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	metricsSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("metrics listener starting", "port", cfg.MetricsPort)
		err := metricsSrv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("metrics listener failed", "err", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		log.Info("worker shutting down")
		cancel()
	}()

	w := worker.New(
		worker.Config{QueueName: cfg.QueueName},
		rdb.Raw(),
		notifications.NewLogNotifier(log),
		metrics,
		log,
	)

	log.Info("worker starting", "queue", cfg.QueueName)

	err := w.Run(ctx)

	shutdownCtx, shutdownCancel := config.WithTimeout(5 * time.Second)
	defer shutdownCancel()
	_ = metricsSrv.Shutdown(shutdownCtx)

	if err != nil {
		log.Error("worker stopped", "err", err)
		os.Exit(1)
	}
}
