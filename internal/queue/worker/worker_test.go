package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/taskflowhq/taskflow/internal/jobs"
	"github.com/taskflowhq/taskflow/internal/notifications"
	"github.com/taskflowhq/taskflow/internal/observability"
)

type recordingNotifier struct {
	sent []notifications.SendWelcomeInput
	err  error
}

func (n *recordingNotifier) SendWelcome(_ context.Context, in notifications.SendWelcomeInput) error {
	n.sent = append(n.sent, in)
	return n.err
}

func newTestWorker(n notifications.Notifier) *Worker {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(Config{QueueName: "test:jobs"}, nil, n, nil, log)
}

func newMeteredWorker(n notifications.Notifier) (*Worker, *observability.Prom) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewProm(prometheus.NewRegistry())

	return New(Config{QueueName: "test:jobs"}, nil, n, metrics, log), metrics
}

func TestProcess_WelcomeEmailReachesNotifier(t *testing.T) {
	notifier := &recordingNotifier{}
	w := newTestWorker(notifier)

	j, err := jobs.NewWelcomeEmail("j@x.com", "jdoe")
	if err != nil {
		t.Fatalf("NewWelcomeEmail error: %v", err)
	}

	if err := w.Process(context.Background(), j); err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	if got := notifier.sent[0]; got.Email != "j@x.com" || got.Username != "jdoe" {
		t.Fatalf("unexpected notification: %+v", got)
	}
}

func TestProcess_NotifierErrorPropagates(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	w := newTestWorker(notifier)

	j, err := jobs.NewWelcomeEmail("j@x.com", "jdoe")
	if err != nil {
		t.Fatalf("NewWelcomeEmail error: %v", err)
	}

	if err := w.Process(context.Background(), j); err == nil {
		t.Fatalf("expected the notifier error to surface")
	}
}

func TestProcess_RecordsJobOutcomes(t *testing.T) {
	notifier := &recordingNotifier{}
	w, metrics := newMeteredWorker(notifier)

	j, err := jobs.NewWelcomeEmail("j@x.com", "jdoe")
	if err != nil {
		t.Fatalf("NewWelcomeEmail error: %v", err)
	}

	if err := w.Process(context.Background(), j); err != nil {
		t.Fatalf("Process error: %v", err)
	}

	notifier.err = errors.New("smtp down")
	if err := w.Process(context.Background(), j); err == nil {
		t.Fatalf("expected the second job to fail")
	}

	done := testutil.ToFloat64(metrics.JobResults.WithLabelValues(string(jobs.JobWelcomeEmail), "done"))
	failed := testutil.ToFloat64(metrics.JobResults.WithLabelValues(string(jobs.JobWelcomeEmail), "failed"))

	if done != 1 {
		t.Fatalf("expected 1 done result, got %v", done)
	}
	if failed != 1 {
		t.Fatalf("expected 1 failed result, got %v", failed)
	}

	if inFlight := testutil.ToFloat64(metrics.JobsInFlight); inFlight != 0 {
		t.Fatalf("expected the in-flight gauge back at 0, got %v", inFlight)
	}
}

func TestProcess_RejectsBadJobs(t *testing.T) {
	notifier := &recordingNotifier{}
	w := newTestWorker(notifier)

	tests := []struct {
		name string
		job  jobs.Job
	}{
		{"unknown type", jobs.Job{Type: "mystery", Payload: []byte(`{}`)}},
		{"empty payload", jobs.Job{Type: jobs.JobWelcomeEmail}},
		{"missing fields", jobs.Job{Type: jobs.JobWelcomeEmail, Payload: []byte(`{"email":""}`)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := w.Process(context.Background(), tc.job); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}

	if len(notifier.sent) != 0 {
		t.Fatalf("bad jobs must not reach the notifier, got %d sends", len(notifier.sent))
	}
}
