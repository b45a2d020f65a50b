package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Hash holding the world settings
	settingsKey = "settings"

	fieldActive     = "active"
	fieldHideGMData = "hide_gm_data"
)

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using a Redis hash
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
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

// GetSettings reads the hash. Missing or unreadable fields keep their defaults.
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.Settings, error) {
	values, err := r.client.HGetAll(ctx, settingsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings := models.DefaultSettings()
	if v, ok := values[fieldActive]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.Active = b
		}
	}
	if v, ok := values[fieldHideGMData]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.HideGMData = b
		}
	}

	return settings, nil
}

// SetActive stores the recording flag
func (r *redisRepository) SetActive(ctx context.Context, input *SetActiveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.HSet(ctx, settingsKey, fieldActive, strconv.FormatBool(input.Active)).Err(); err != nil {
		return fmt.Errorf("failed to save active setting: %w", err)
	}

	return nil
}

// SetHideGMData stores the GM visibility flag
func (r *redisRepository) SetHideGMData(ctx context.Context, input *SetHideGMDataInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.HSet(ctx, settingsKey, fieldHideGMData, strconv.FormatBool(input.HideGMData)).Err(); err != nil {
		return fmt.Errorf("failed to save hide GM data setting: %w", err)
	}

	return nil
}
