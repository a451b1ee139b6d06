package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskflowhq/taskflow/internal/config"
	"github.com/taskflowhq/taskflow/internal/db"
	apphttp "github.com/taskflowhq/taskflow/internal/http"
	"github.com/taskflowhq/taskflow/internal/http/handlers"
	"github.com/taskflowhq/taskflow/internal/identity"
	"github.com/taskflowhq/taskflow/internal/observability"
	"github.com/taskflowhq/taskflow/internal/queue"
	"github.com/taskflowhq/taskflow/internal/queue/redisclient"
	"github.com/taskflowhq/taskflow/internal/repo/memory"
	"github.com/taskflowhq/taskflow/internal/repo/postgres"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env, "taskflow-api")

	if cfg.OTELEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(context.Background(), "taskflow-api", cfg.OTELEndpoint)
		if err != nil {
			log.Error("tracer init failed", "err", err)
		} else {
			defer func() {
				ctx, cancel := config.WithTimeout(5 * time.Second)
				defer cancel()
				_ = shutdownTracer(ctx)
			}()
		}
	}

	// User store: postgres when configured, in-memory otherwise (dev mode).
	var store identity.UserStore
	var ping func() error

	if cfg.DBURL != "" {
		pool, err := db.NewPool(cfg.DBURL)
		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		store = postgres.NewUsersRepo(pool)
		ping = func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()
			return pool.Ping(ctx)
		}
	} else {
		log.Warn("no database configured, using in-memory user store")
		store = memory.NewUsersRepo()
	}

	var enqueuer handlers.WelcomeEnqueuer

	if cfg.RedisAddr != "" {
		rdb := redisclient.New(redisclient.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		enqueuer = queue.NewProducer(rdb.Raw(), cfg.QueueName)
	} else {
		log.Warn("no redis configured, welcome notifications disabled")
	}

	router := apphttp.NewRouter(log, apphttp.Deps{
		Cfg:      cfg,
		Store:    store,
		Tasks:    memory.NewTasksRepo(),
		Enqueuer: enqueuer,
		Ping:     ping,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
