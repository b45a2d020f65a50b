package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rollstats/internal/common/clock"
	"github.com/KirkDiggler/rollstats/internal/common/uuid"
	"github.com/KirkDiggler/rollstats/internal/config"
	"github.com/KirkDiggler/rollstats/internal/handlers/discord"
	"github.com/KirkDiggler/rollstats/internal/repositories/attribute_log"
	"github.com/KirkDiggler/rollstats/internal/repositories/roll_log"
	"github.com/KirkDiggler/rollstats/internal/repositories/settings"
	"github.com/KirkDiggler/rollstats/internal/services/attributes"
	"github.com/KirkDiggler/rollstats/internal/services/recorder"
	"github.com/KirkDiggler/rollstats/internal/services/relay"
	statsService "github.com/KirkDiggler/rollstats/internal/services/stats"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	settingsRepo, err := settings.NewRedis(&settings.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create settings repository: %v", err)
	}

	attributeRepo, err := attribute_log.NewRedis(&attribute_log.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create attribute log repository: %v", err)
	}

	rollRepo := newRollRepository(cfg, redisClient)

	// Only the authority writes. Everyone else forwards over the relay.
	var sink relay.Sink
	if cfg.IsAuthority() {
		applier, err := relay.NewApplier(&relay.ApplierConfig{
			RollRepo:      rollRepo,
			AttributeRepo: attributeRepo,
		})
		if err != nil {
			log.Fatalf("Failed to create relay applier: %v", err)
		}

		consumer, err := relay.NewConsumer(&relay.ConsumerConfig{
			RedisClient: redisClient,
			Channel:     cfg.RelayChannel,
			Sink:        applier,
		})
		if err != nil {
			log.Fatalf("Failed to create relay consumer: %v", err)
		}

		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.Printf("Relay consumer stopped: %v", err)
			}
		}()

		sink = applier
		log.Printf("Running as authority on %s storage", cfg.StoreBackend)
	} else {
		publisher, err := relay.NewPublisher(&relay.PublisherConfig{
			RedisClient: redisClient,
			Channel:     cfg.RelayChannel,
		})
		if err != nil {
			log.Fatalf("Failed to create relay publisher: %v", err)
		}

		sink = publisher
		log.Printf("Running as participant, forwarding writes on %s", cfg.RelayChannel)
	}

	recorderSvc, err := recorder.New(&recorder.Config{
		SettingsRepo: settingsRepo,
		Sink:         sink,
		Clock:        clock.New(),
		UUID:         uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create recorder service: %v", err)
	}

	statsSvc, err := statsService.New(&statsService.Config{
		RollReader:   rollRepo,
		SettingsRepo: settingsRepo,
		GMUserIDs:    cfg.GMUserIDs,
	})
	if err != nil {
		log.Fatalf("Failed to create stats service: %v", err)
	}

	attributeSvc, err := attributes.New(&attributes.Config{
		Sink:          sink,
		AttributeRepo: attributeRepo,
		Clock:         clock.New(),
		UUID:          uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create attribute service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		RecorderService:  recorderSvc,
		StatsService:     statsSvc,
		AttributeService: attributeSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	cancel()

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if closer, ok := rollRepo.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Error closing roll log: %v", err)
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}

// newRollRepository opens the configured roll log backend
func newRollRepository(cfg *config.Config, redisClient *redis.Client) roll_log.Repository {
	if cfg.StoreBackend == config.StoreSQLite {
		repo, err := roll_log.NewSQLite(&roll_log.SQLiteConfig{
			Path: cfg.SQLitePath,
		})
		if err != nil {
			log.Fatalf("Failed to open SQLite roll log: %v", err)
		}
		return repo
	}

	repo, err := roll_log.NewRedis(&roll_log.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create roll log repository: %v", err)
	}
	return repo
}
