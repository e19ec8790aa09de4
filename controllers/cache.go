package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheTTL = 10 * time.Minute

// serveCached writes the cached body for key if one exists. The cache is
// best-effort: a nil client or any Redis error means a miss.
func serveCached(redisClient *redis.Client, w http.ResponseWriter, r *http.Request, key string) bool {
	if redisClient == nil {
		return false
	}
	cached, err := redisClient.Get(r.Context(), key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("redis GET failed")
		}
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(cached))
	return true
}

func cacheResult(redisClient *redis.Client, r *http.Request, key string, body []byte) {
	if redisClient == nil {
		return
	}
	if err := redisClient.Set(r.Context(), key, body, cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis SET failed")
	}
}

func contextWithCacheTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func invalidateCache(redisClient *redis.Client, keys ...string) {
	if redisClient == nil {
		return
	}
	go func() {
		ctx, cancel := contextWithCacheTimeout()
		defer cancel()
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
		}
	}()
}
