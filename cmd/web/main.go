package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskflowhq/taskflow/internal/client"
	"github.com/taskflowhq/taskflow/internal/config"
	"github.com/taskflowhq/taskflow/internal/observability"
	"github.com/taskflowhq/taskflow/internal/web"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env, "taskflow-web")

	api := client.New(cfg.APIBaseURL)
	router := web.NewRouter(log, cfg.Env, api)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.WebPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("gateway starting", "port", cfg.WebPort, "api", cfg.APIBaseURL)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("gateway failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("gateway shutting down")

	ctx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
}
