package database

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"api/config"
	"api/metrics"

	"github.com/redis/go-redis/v9"
)

// REDIS is the shared cache client. It stays nil when no Redis address is
// configured or the server is unreachable, and every helper degrades to a
// cache miss in that case.
var REDIS *redis.Client

// CacheTTL is the expiration applied to every cached read
const CacheTTL = 10 * time.Minute

// InitCache connects to Redis. Caching is optional: the API works without it.
func InitCache() {
	if config.RedisAddr == "" {
		log.Println("No REDIS_ADDR configured, caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("Redis unreachable, caching disabled: ", err)
		return
	}

	REDIS = client
	log.Println("Connected to Redis cache: ", config.RedisAddr)
}

// GetFromCache fills dest from the cache and reports whether the key was found
func GetFromCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if REDIS == nil {
		return false, nil
	}

	val, err := REDIS.Get(ctx, key).Result()
	if err == redis.Nil {
		metrics.CacheMisses.Inc()
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}

	metrics.CacheHits.Inc()
	return true, nil
}

// SetToCache stores value under key with the default expiration
func SetToCache(ctx context.Context, key string, value interface{}) error {
	if REDIS == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return REDIS.Set(ctx, key, data, CacheTTL).Err()
}

// InvalidateCache deletes every key matching the given pattern
func InvalidateCache(ctx context.Context, pattern string) {
	if REDIS == nil {
		return
	}

	iter := REDIS.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		REDIS.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Println("Error while invalidating cache keys: ", err)
	}
}
