package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taskflowhq/taskflow/internal/jobs"
	"github.com/taskflowhq/taskflow/internal/notifications"
	"github.com/taskflowhq/taskflow/internal/observability"
)

type Config struct {
	QueueName string
	// How long each BRPOP blocks before the loop re-checks ctx.
	PopTimeout time.Duration
}

type Worker struct {
	cfg      Config
	rdb      *redis.Client
	notifier notifications.Notifier
	metrics  *observability.Prom
	log      *slog.Logger
}

// New builds a worker. metrics may be nil, in which case job outcomes are
// only logged.
func New(cfg Config, rdb *redis.Client, notifier notifications.Notifier, metrics *observability.Prom, log *slog.Logger) *Worker {
	if cfg.PopTimeout <= 0 {
		cfg.PopTimeout = 5 * time.Second
	}

	return &Worker{
		cfg:      cfg,
		rdb:      rdb,
		notifier: notifier,
		metrics:  metrics,
		log:      log,
	}
}

// Run consumes jobs until ctx is cancelled. Transport errors back off
// exponentially; a malformed job is logged and dropped, never retried.
func (w *Worker) Run(ctx context.Context) error {
	attempt := 0

	for {
		if ctx.Err() != nil {
			w.log.Info("worker received shutdown signal")
			return nil
		}

		res, err := w.rdb.BRPop(ctx, w.cfg.PopTimeout, w.cfg.QueueName).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				attempt = 0
				continue
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}

			delay := ExponentialBackoff(attempt)
			attempt++
			w.log.Error("queue pop failed", "err", err, "retry_in", delay.String())

			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
			continue
		}

		attempt = 0

		// BRPop returns [queueName, value].
		if len(res) != 2 {
			continue
		}

		w.processRaw(ctx, []byte(res[1]))
	}
}

func (w *Worker) processRaw(ctx context.Context, raw []byte) {
	var j jobs.Job

	if err := json.Unmarshal(raw, &j); err != nil {
		w.log.Error("dropping undecodable job", "err", err)
		return
	}

	if err := w.Process(ctx, j); err != nil {
		w.log.Error("job failed", "job_id", j.ID, "job_type", string(j.Type), "err", err)
		return
	}

	w.log.Info("job done", "job_id", j.ID, "job_type", string(j.Type))
}

// Process executes a single decoded job. Split out from the pop loop so
// tests can drive it directly.
func (w *Worker) Process(ctx context.Context, j jobs.Job) error {
	if w.metrics != nil {
		w.metrics.JobsInFlight.Inc()
		defer w.metrics.JobsInFlight.Dec()
	}

	err := w.process(ctx, j)

	if w.metrics != nil {
		result := "done"
		if err != nil {
			result = "failed"
		}
		w.metrics.JobResults.WithLabelValues(string(j.Type), result).Inc()
	}

	return err
}

func (w *Worker) process(ctx context.Context, j jobs.Job) error {
	payload, err := jobs.DecodePayload(j)
	if err != nil {
		return err
	}

	if err := jobs.ValidatePayload(j.Type, payload); err != nil {
		return err
	}

	switch p := payload.(type) {
	case jobs.WelcomeEmailPayload:
		return w.notifier.SendWelcome(ctx, notifications.SendWelcomeInput{
			Email:    p.Email,
			Username: p.Username,
		})
	default:
		return jobs.ErrInvalidJobType
	}
}
