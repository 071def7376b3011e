// Package redis implements txsubmit.ReceiptStore on top of Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn       *redis.Client
	receiptTTL time.Duration // expiration of stored receipts; 0 keeps them forever
}

// Option customizes the Redis client.
type Option func(*client)

// WithReceiptTTL sets how long confirmed receipts are kept. A zero TTL keeps them forever.
func WithReceiptTTL(ttl time.Duration) Option {
	return func(c *client) {
		c.receiptTTL = ttl
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	c := &client{
		conn:       conn,
		receiptTTL: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
