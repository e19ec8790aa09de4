package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// InitRedis connects the listing cache. A missing REDIS_ADDR or failed ping
// disables caching rather than failing startup; the cache is an optimization,
// not a dependency.
func InitRedis(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR not set, listing cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn().Err(err).Msg("Redis unreachable, listing cache disabled")
		return nil
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")
	return client
}
