package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"project-task-api/internal/config"
)

// NewRedis creates a Redis client from configuration and verifies the
// connection. The queue worker and meeting service share this client.
func NewRedis(cfg *config.RedisConfig, log *zap.Logger) (*redis.Client, error) {
	var client *redis.Client

	// redis:// URL takes precedence when provided
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	log.Info("Redis connection established successfully",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
	)
	return client, nil
}
