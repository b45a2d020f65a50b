package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConsumerConfig holds configuration for the relay consumer
type ConsumerConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Channel to subscribe to, DefaultChannel when empty
	Channel string

	// Sink receives every decoded command, normally the Applier
	Sink Sink
}

// Consumer runs on the authority and applies forwarded commands
type Consumer struct {
	client  *redis.Client
	channel string
	sink    Sink
}

// NewConsumer creates a new relay consumer
func NewConsumer(cfg *ConsumerConfig) (*Consumer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	if cfg.Sink == nil {
		return nil, ErrNilSink
	}

	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &Consumer{
		client:  cfg.RedisClient,
		channel: channel,
		sink:    cfg.Sink,
	}, nil
}

// Run subscribes and applies commands in arrival order until ctx is done.
// A command that fails is logged and dropped.
func (c *Consumer) Run(ctx context.Context) error {
	sub := c.client.Subscribe(ctx, c.channel)
	defer sub.Close()

	// wait for the subscription to be confirmed
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", c.channel, err)
	}

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			c.handle(ctx, msg.Payload)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, payload string) {
	var cmd Command
	if err := json.Unmarshal([]byte(payload), &cmd); err != nil {
		log.Printf("Error decoding relay command: %v", err)
		return
	}

	if err := c.sink.Submit(ctx, &cmd); err != nil {
		log.Printf("Error applying relay command %s: %v", cmd.Op, err)
	}
}
