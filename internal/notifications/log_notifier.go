package notifications

import (
	"context"
	"log/slog"
)

// LogNotifier stands in for a mail provider; it records the send and
// succeeds. Swap in a real provider behind the same interface.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendWelcome(ctx context.Context, in SendWelcomeInput) error {
	n.log.Info("notification.welcome_email", "email", in.Email, "username", in.Username)

	return nil
}
