package jobs

import (
	"time"

	"github.com/google/uuid"
)

// Job is the envelope pushed onto the Redis queue. Payload stays raw JSON so
// the queue layer never needs to know the concrete payload types.
type Job struct {
	ID         string    `json:"id"`
	Type       JobType   `json:"type"`
	Payload    []byte    `json:"payload"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

func NewJob(t JobType, payloadJSON []byte) (Job, error) {
	if !t.IsValid() {
		return Job{}, ErrInvalidJobType
	}

	return Job{
		ID:         uuid.NewString(),
		Type:       t,
		Payload:    payloadJSON,
		EnqueuedAt: time.Now().UTC(),
	}, nil
}

// NewWelcomeEmail builds the job registration enqueues for a fresh account.
func NewWelcomeEmail(email, username string) (Job, error) {
	p := WelcomeEmailPayload{
		Email:    email,
		Username: username,
	}

	b, err := EncodePayload(JobWelcomeEmail, p)
	if err != nil {
		return Job{}, err
	}

	return NewJob(JobWelcomeEmail, b)
}
