package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PublisherConfig holds configuration for the relay publisher
type PublisherConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Channel to publish on, DefaultChannel when empty
	Channel string
}

// Publisher forwards commands to the authority over Redis Pub/Sub
type Publisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher creates a new relay publisher
func NewPublisher(cfg *PublisherConfig) (*Publisher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &Publisher{
		client:  cfg.RedisClient,
		channel: channel,
	}, nil
}

// Submit publishes the command. It returns once Redis has taken the message;
// whether the authority stored it is never reported back.
func (p *Publisher) Submit(ctx context.Context, cmd *Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish command: %w", err)
	}

	return nil
}
