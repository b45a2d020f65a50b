package attribute_log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Keys for the Redis lists
	damageLogKey  = "damage_log"
	fatigueLogKey = "fatigue_log"
)

// Config holds configuration for the Redis attribute log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis lists
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed attribute log repository
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

// AppendDamage pushes a damage entry onto the damage list
func (r *redisRepository) AppendDamage(ctx context.Context, input *AppendDamageInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	if input.Entry.ID == "" {
		return errors.New("damage entry ID cannot be empty")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal damage entry: %w", err)
	}

	if err := r.client.RPush(ctx, damageLogKey, entryJSON).Err(); err != nil {
		return fmt.Errorf("failed to append damage entry: %w", err)
	}

	return nil
}

// AppendFatigue pushes a fatigue entry onto the fatigue list
func (r *redisRepository) AppendFatigue(ctx context.Context, input *AppendFatigueInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	if input.Entry.ID == "" {
		return errors.New("fatigue entry ID cannot be empty")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal fatigue entry: %w", err)
	}

	if err := r.client.RPush(ctx, fatigueLogKey, entryJSON).Err(); err != nil {
		return fmt.Errorf("failed to append fatigue entry: %w", err)
	}

	return nil
}

// ListDamage reads the damage list
func (r *redisRepository) ListDamage(ctx context.Context, input *ListDamageInput) (*ListDamageOutput, error) {
	values, err := r.client.LRange(ctx, damageLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list damage entries: %w", err)
	}

	actorID := ""
	if input != nil {
		actorID = input.ActorID
	}

	entries := make([]*models.DamageEntry, 0, len(values))
	for _, value := range values {
		var entry models.DamageEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			continue
		}
		if actorID != "" && entry.ActorID != actorID {
			continue
		}
		entries = append(entries, &entry)
	}

	return &ListDamageOutput{
		Entries: entries,
	}, nil
}

// ListFatigue reads the fatigue list
func (r *redisRepository) ListFatigue(ctx context.Context, input *ListFatigueInput) (*ListFatigueOutput, error) {
	values, err := r.client.LRange(ctx, fatigueLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list fatigue entries: %w", err)
	}

	actorID := ""
	if input != nil {
		actorID = input.ActorID
	}

	entries := make([]*models.FatigueEntry, 0, len(values))
	for _, value := range values {
		var entry models.FatigueEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			continue
		}
		if actorID != "" && entry.ActorID != actorID {
			continue
		}
		entries = append(entries, &entry)
	}

	return &ListFatigueOutput{
		Entries: entries,
	}, nil
}

// ResetAttributes deletes both lists in one round trip
func (r *redisRepository) ResetAttributes(ctx context.Context, input *ResetAttributesInput) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, damageLogKey)
	pipe.Del(ctx, fatigueLogKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reset attribute logs: %w", err)
	}

	return nil
}
