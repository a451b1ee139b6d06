package queue

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/taskflowhq/taskflow/internal/jobs"
)

// Producer pushes encoded jobs onto a Redis list; the worker pops from the
// other end, so the list behaves as a FIFO queue.
type Producer struct {
	rdb       *redis.Client
	queueName string
}

func NewProducer(rdb *redis.Client, queueName string) *Producer {
	return &Producer{rdb: rdb, queueName: queueName}
}

func (p *Producer) Enqueue(ctx context.Context, j jobs.Job) error {
	b, err := json.Marshal(j)
	if err != nil {
		return err
	}

	return p.rdb.LPush(ctx, p.queueName, b).Err()
}
