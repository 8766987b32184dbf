package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher pushes accepted feedback ids onto a stream so out-of-process
// consumers (notifiers, issue sync) can pick them up.
type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 1000
	}

	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) Publish(ctx context.Context, message string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]interface{}{"body": message},
	}).Err()
}
