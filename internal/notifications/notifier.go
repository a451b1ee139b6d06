package notifications

import "context"

type SendWelcomeInput struct {
	Email    string
	Username string
}

type Notifier interface {
	SendWelcome(ctx context.Context, input SendWelcomeInput) error
}
