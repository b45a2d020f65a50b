package roll_log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key for the roll list in Redis
	rollLogKey = "roll_log"
)

// Config holds configuration for the Redis roll log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using a Redis list
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roll log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AppendRoll pushes a record onto the tail of the list
func (r *redisRepository) AppendRoll(ctx context.Context, input *AppendRollInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if input.Record.ID == "" {
		return errors.New("roll record ID cannot be empty")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal roll record: %w", err)
	}

	if err := r.client.RPush(ctx, rollLogKey, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to append roll record: %w", err)
	}

	return nil
}

// ListRolls reads the whole list. Entries that no longer decode are skipped.
func (r *redisRepository) ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error) {
	values, err := r.client.LRange(ctx, rollLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list roll records: %w", err)
	}

	records := make([]*models.RollRecord, 0, len(values))
	for _, value := range values {
		var record models.RollRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			continue
		}
		records = append(records, &record)
	}

	return &ListRollsOutput{
		Records: records,
	}, nil
}

// ResetRolls deletes the list
func (r *redisRepository) ResetRolls(ctx context.Context, input *ResetRollsInput) error {
	if err := r.client.Del(ctx, rollLogKey).Err(); err != nil {
		return fmt.Errorf("failed to reset roll log: %w", err)
	}

	return nil
}
