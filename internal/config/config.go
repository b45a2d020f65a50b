// Package config loads the bot's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Role decides whether this process owns the logs
type Role string

const (
	// RoleAuthority applies writes to the store
	RoleAuthority Role = "authority"

	// RoleParticipant forwards writes to the authority over the relay
	RoleParticipant Role = "participant"
)

// StoreBackend selects the roll log storage
type StoreBackend string

const (
	StoreRedis  StoreBackend = "redis"
	StoreSQLite StoreBackend = "sqlite"
)

// Config holds everything read from the environment
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	Role         Role         `env:"ROLE" envDefault:"authority"`
	StoreBackend StoreBackend `env:"STORE_BACKEND" envDefault:"redis"`
	SQLitePath   string       `env:"SQLITE_PATH" envDefault:"rollstats.db"`

	// GMUserIDs are hidden from statistics while HideGMData is on
	GMUserIDs []string `env:"GM_USER_IDS" envSeparator:","`

	RelayChannel string `env:"RELAY_CHANNEL" envDefault:"rollstats:relay"`
}

// Load reads an optional .env file, then parses the process environment
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
		}
	}

	return Parse(nil)
}

// Parse builds a Config from environment, or from the process environment
// when environment is nil
func Parse(environment map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environment})
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values the env tags cannot
func (c *Config) Validate() error {
	switch c.Role {
	case RoleAuthority, RoleParticipant:
	default:
		return fmt.Errorf("invalid ROLE %q", c.Role)
	}

	switch c.StoreBackend {
	case StoreRedis:
	case StoreSQLite:
		// the file is only reachable from the authority's host
		if c.Role != RoleAuthority {
			return errors.New("STORE_BACKEND=sqlite requires ROLE=authority")
		}
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH cannot be empty")
		}
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q", c.StoreBackend)
	}

	if c.RelayChannel == "" {
		return errors.New("RELAY_CHANNEL cannot be empty")
	}

	return nil
}

// IsAuthority reports whether this process applies writes itself
func (c *Config) IsAuthority() bool {
	return c.Role == RoleAuthority
}
